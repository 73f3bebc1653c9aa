package appointments

import (
	"context"
	"time"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointmentModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context, filter *requests.AppointmentFilter) ([]models.Appointment, error) {
	query := bson.M{}
	if filter.Student != "" {
		query["student"] = filter.Student
	}
	if filter.Doctor != "" {
		query["doctor"] = filter.Doctor
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		query["notes"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}

	cursor, err := r.Collection.Find(ctx, query, options.Find().SetSort(bson.M{"slotStart": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointmentList []models.Appointment
	if err := cursor.All(ctx, &appointmentList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointmentList, nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) CountByStudentAndStatus(ctx context.Context, studentID, status string) (int, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"student": studentID, "status": status})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return int(count), nil
}

func (r *AppointmentMongoRepository) CountUpcoming(ctx context.Context, studentID string, after time.Time) (int, error) {
	query := bson.M{
		"student":   studentID,
		"status":    constvars.AppointmentStatusApproved,
		"slotStart": bson.M{"$gte": after},
	}
	count, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return int(count), nil
}
