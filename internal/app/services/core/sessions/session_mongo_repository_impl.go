package sessions

import (
	"context"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SessionMongoRepository struct {
	Collection *mongo.Collection
}

func NewSessionMongoRepository(db *mongo.Client, dbName string) SessionRepository {
	return &SessionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSessions),
	}
}

func (r *SessionMongoRepository) CreateSession(ctx context.Context, sessionModel *models.Session) (string, error) {
	result, err := r.Collection.InsertOne(ctx, sessionModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *SessionMongoRepository) FindByID(ctx context.Context, sessionID string) (*models.Session, error) {
	objectID, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var session models.Session
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &session, nil
}

func (r *SessionMongoRepository) FindByStudent(ctx context.Context, studentID string) ([]models.Session, error) {
	return r.find(ctx, bson.M{"student": studentID})
}

func (r *SessionMongoRepository) FindByDoctor(ctx context.Context, doctorID string, filter *requests.SessionFilter) ([]models.Session, error) {
	query := bson.M{"doctorId": doctorID}
	if filter != nil && filter.Date != "" {
		query["allottedDate"] = filter.Date
	}
	return r.find(ctx, query)
}

func (r *SessionMongoRepository) UpdateSession(ctx context.Context, sessionModel *models.Session) error {
	objectID, err := primitive.ObjectIDFromHex(sessionModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	sessionModel.SetUpdatedAt()

	update := bson.M{"$set": bson.M{
		"status":      sessionModel.Status,
		"completedAt": sessionModel.CompletedAt,
		"notes":       sessionModel.Notes,
		"updatedAt":   sessionModel.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// CountActiveForDate counts every non-cancelled session the student holds on
// the date; the daily booking cap is enforced against this number.
func (r *SessionMongoRepository) CountActiveForDate(ctx context.Context, studentID, date string) (int, error) {
	query := bson.M{
		"student":      studentID,
		"allottedDate": date,
		"status":       bson.M{"$ne": constvars.SessionStatusCancelled},
	}
	count, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return int(count), nil
}

func (r *SessionMongoRepository) find(ctx context.Context, query bson.M) ([]models.Session, error) {
	cursor, err := r.Collection.Find(ctx, query, options.Find().SetSort(bson.M{"slotStart": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var sessionList []models.Session
	if err := cursor.All(ctx, &sessionList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return sessionList, nil
}
