package doctors

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

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (string, error) {
	result, err := r.Collection.InsertOne(ctx, doctorModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DoctorMongoRepository) FindAll(ctx context.Context, filter *requests.DoctorFilter) ([]models.Doctor, int, error) {
	query := bson.M{}
	if filter.Specialization != "" {
		query["specialization"] = filter.Specialization
	}
	if filter.AvailabilityType != "" {
		query["availabilityType"] = bson.M{"$in": []string{filter.AvailabilityType, constvars.AvailabilityTypeBoth}}
	}
	if filter.University != "" {
		query["universities"] = filter.University
	}
	if filter.Search != "" {
		query["name"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().SetSort(bson.M{"name": 1})
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		findOptions.SetSkip(int64((page - 1) * filter.PageSize))
		findOptions.SetLimit(int64(filter.PageSize))
	}

	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var doctorList []models.Doctor
	if err := cursor.All(ctx, &doctorList); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctorList, int(total), nil
}

func (r *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var doctor models.Doctor
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) UpdateDoctor(ctx context.Context, doctorModel *models.Doctor) error {
	objectID, err := primitive.ObjectIDFromHex(doctorModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	doctorModel.SetUpdatedAt()

	update := bson.M{"$set": bson.M{
		"name":             doctorModel.Name,
		"specialization":   doctorModel.Specialization,
		"phone":            doctorModel.Phone,
		"password":         doctorModel.Password,
		"experience":       doctorModel.Experience,
		"imageUrl":         doctorModel.ImageUrl,
		"fees":             doctorModel.Fees,
		"hospital":         doctorModel.Hospital,
		"availabilityType": doctorModel.AvailabilityType,
		"isAvailable":      doctorModel.IsAvailable,
		"weeklySchedule":   doctorModel.WeeklySchedule,
		"universities":     doctorModel.Universities,
		"updatedAt":        doctorModel.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) DeleteByID(ctx context.Context, doctorID string) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) SetDateSlots(ctx context.Context, doctorID, date string, slotList []models.TimeSlot) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"dateSlots." + date: slotList,
		"updatedAt":         time.Now(),
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) UnsetDateSlots(ctx context.Context, doctorID, date string) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$unset": bson.M{"dateSlots." + date: ""},
		"$set":   bson.M{"updatedAt": time.Now()},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) ReplaceAllDateSlots(ctx context.Context, doctorID string, dateSlots map[string][]models.TimeSlot, availability string) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	set := bson.M{
		"dateSlots": dateSlots,
		"updatedAt": time.Now(),
	}
	if availability != "" {
		set["isAvailable"] = availability
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) SetTodaySchedule(ctx context.Context, doctorID string, schedule models.TodaySchedule) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"todaySchedule": schedule,
		"updatedAt":     time.Now(),
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// BookSlot flips one slot's availability with a single conditional update.
// The filter only matches while the slot is still available, so two racing
// bookings cannot both see ModifiedCount == 1.
func (r *DoctorMongoRepository) BookSlot(ctx context.Context, doctorID, date, startTime, endTime string) (bool, error) {
	return r.casSlotAvailability(ctx, doctorID, date, startTime, endTime, true, false)
}

// UnbookSlot is the mirror of BookSlot: unavailable back to available.
func (r *DoctorMongoRepository) UnbookSlot(ctx context.Context, doctorID, date, startTime, endTime string) (bool, error) {
	return r.casSlotAvailability(ctx, doctorID, date, startTime, endTime, false, true)
}

func (r *DoctorMongoRepository) casSlotAvailability(ctx context.Context, doctorID, date, startTime, endTime string, from, to bool) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	field := "dateSlots." + date
	filter := bson.M{
		"_id": objectID,
		field: bson.M{"$elemMatch": bson.M{
			"startTime":   startTime,
			"endTime":     endTime,
			"isAvailable": from,
		}},
	}
	update := bson.M{"$set": bson.M{
		field + ".$.isAvailable": to,
		"updatedAt":              time.Now(),
	}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}
