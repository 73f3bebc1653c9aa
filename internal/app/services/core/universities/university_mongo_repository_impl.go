package universities

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

type UniversityMongoRepository struct {
	Collection *mongo.Collection
}

func NewUniversityMongoRepository(db *mongo.Client, dbName string) UniversityRepository {
	return &UniversityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUniversities),
	}
}

func (r *UniversityMongoRepository) CreateUniversity(ctx context.Context, universityModel *models.University) (string, error) {
	result, err := r.Collection.InsertOne(ctx, universityModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *UniversityMongoRepository) FindAll(ctx context.Context) ([]models.University, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var universityList []models.University
	if err := cursor.All(ctx, &universityList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return universityList, nil
}

func (r *UniversityMongoRepository) FindByID(ctx context.Context, universityID string) (*models.University, error) {
	objectID, err := primitive.ObjectIDFromHex(universityID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var university models.University
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&university)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &university, nil
}

// FindByDomain matches both bare ("campus.edu") and prefixed ("@campus.edu")
// stored patterns, since older records carry either form.
func (r *UniversityMongoRepository) FindByDomain(ctx context.Context, domain string) (*models.University, error) {
	var university models.University
	filter := bson.M{"domainPatterns": bson.M{"$in": []string{domain, "@" + domain}}}
	err := r.Collection.FindOne(ctx, filter).Decode(&university)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &university, nil
}

func (r *UniversityMongoRepository) FindByName(ctx context.Context, name string) (*models.University, error) {
	var university models.University
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&university)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &university, nil
}
