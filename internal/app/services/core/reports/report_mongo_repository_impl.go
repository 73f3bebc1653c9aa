package reports

import (
	"context"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportMongoRepository struct {
	Collection *mongo.Collection
}

func NewReportMongoRepository(db *mongo.Client, dbName string) ReportRepository {
	return &ReportMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReports),
	}
}

func (r *ReportMongoRepository) CreateReport(ctx context.Context, reportModel *models.Report) (string, error) {
	result, err := r.Collection.InsertOne(ctx, reportModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ReportMongoRepository) FindByStudent(ctx context.Context, studentID string) ([]models.Report, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"student": studentID}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var reportList []models.Report
	if err := cursor.All(ctx, &reportList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reportList, nil
}
