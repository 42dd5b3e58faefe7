package repository

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"booking-service/domain"
)

type BookingRepo struct {
	collection *mongo.Collection
	logger     *log.Logger
}

func NewBookingRepo(collection *mongo.Collection, logger *log.Logger) *BookingRepo {
	return &BookingRepo{collection: collection, logger: logger}
}

func (br *BookingRepo) Insert(ctx context.Context, booking *domain.Booking) error {
	result, err := br.collection.InsertOne(ctx, booking)
	if err != nil {
		br.logger.Println(err)
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}
	return nil
}

func (br *BookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	var booking domain.Booking
	err = br.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBookingNotFound
		}
		br.logger.Println(err)
		return nil, err
	}
	return &booking, nil
}

func (br *BookingRepo) GetByGuest(ctx context.Context, guestID string) (domain.Bookings, error) {
	cursor, err := br.collection.Find(ctx, bson.M{"guest_id": guestID})
	if err != nil {
		br.logger.Println(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings domain.Bookings
	for cursor.Next(ctx) {
		var booking domain.Booking
		if err := cursor.Decode(&booking); err != nil {
			br.logger.Println(err)
			return nil, err
		}
		bookings = append(bookings, &booking)
	}
	if err := cursor.Err(); err != nil {
		br.logger.Println(err)
		return nil, err
	}
	return bookings, nil
}

func (br *BookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	filter := bson.M{"_id": booking.ID}
	update := bson.M{"$set": bson.M{
		"travel_date":    booking.TravelDate,
		"current_amount": booking.CurrentAmount,
		"status":         booking.Status,
		"payment_status": booking.PaymentStatus,
	}}

	_, err := br.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		br.logger.Println(err)
		return err
	}
	return nil
}
