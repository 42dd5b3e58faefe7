package repository

import (
	"fmt"
	"log"
	"os"

	"github.com/gocql/gocql"

	"booking-service/domain"
)

// NoSQL: ModificationRepo struct encapsulating Cassandra api client
type ModificationRepo struct {
	session *gocql.Session
	logger  *log.Logger
}

// Reads db configuration from environment and creates the booking
// keyspace if it does not exist yet, then connects to it.
func New(logger *log.Logger) (*ModificationRepo, error) {
	db := os.Getenv("CASS_DB")

	cluster := gocql.NewCluster(db)
	cluster.Keyspace = "system"
	session, err := cluster.CreateSession()
	if err != nil {
		logger.Println(err)
		return nil, err
	}
	err = session.Query(
		fmt.Sprintf(`CREATE KEYSPACE IF NOT EXISTS %s
					WITH replication = {
						'class' : 'SimpleStrategy',
						'replication_factor' : %d
					}`, "booking", 1)).Exec()
	if err != nil {
		logger.Println(err)
	}
	session.Close()

	cluster.Keyspace = "booking"
	cluster.Consistency = gocql.One
	session, err = cluster.CreateSession()
	if err != nil {
		logger.Println(err)
		return nil, err
	}

	return &ModificationRepo{
		session: session,
		logger:  logger,
	}, nil
}

// Disconnect from database
func (mr *ModificationRepo) CloseSession() {
	mr.session.Close()
}

// Create modifications_by_booking table. The ledger is append-only:
// rows are inserted and read, never updated or deleted.
func (mr *ModificationRepo) CreateTable() {
	err := mr.session.Query(
		`CREATE TABLE IF NOT EXISTS modifications_by_booking (
        modification_id timeuuid,
        booking_id text,
        modification_type text,
        old_value text,
        new_value text,
        price_adjustment bigint,
        created_at timestamp,
        reason text,
        PRIMARY KEY ((booking_id), modification_id)
    ) WITH CLUSTERING ORDER BY (modification_id ASC);`,
	).Exec()

	if err != nil {
		mr.logger.Println(err)
	}
}

func (mr *ModificationRepo) InsertModification(record *domain.ModificationRecord) error {
	modificationId := gocql.TimeUUID()

	err := mr.session.Query(
		`INSERT INTO modifications_by_booking
         (modification_id, booking_id, modification_type, old_value, new_value, price_adjustment, created_at, reason)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		modificationId,
		record.BookingID,
		string(record.Type),
		record.OldValue,
		record.NewValue,
		record.PriceAdjustment,
		record.Timestamp,
		record.Reason,
	).Exec()

	if err != nil {
		mr.logger.Println(err)
		return err
	}
	record.ID = domain.TimeUUID(modificationId)

	return nil
}

func (mr *ModificationRepo) GetModificationsByBooking(bookingID string) (domain.ModificationRecords, error) {
	scanner := mr.session.Query(
		`SELECT modification_id, booking_id, modification_type, old_value, new_value, price_adjustment, created_at, reason
         FROM modifications_by_booking WHERE booking_id = ?`,
		bookingID).Iter().Scanner()

	var records domain.ModificationRecords
	for scanner.Next() {
		var rec domain.ModificationRecord
		var id gocql.UUID
		var modType string
		err := scanner.Scan(&id, &rec.BookingID, &modType,
			&rec.OldValue, &rec.NewValue, &rec.PriceAdjustment,
			&rec.Timestamp, &rec.Reason)
		if err != nil {
			mr.logger.Println(err)
			return nil, err
		}
		rec.ID = domain.TimeUUID(id)
		rec.Type = domain.ModificationType(modType)
		records = append(records, &rec)
	}
	if err := scanner.Err(); err != nil {
		mr.logger.Println(err)
		return nil, err
	}
	return records, nil
}
