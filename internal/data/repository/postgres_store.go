package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"
	"tourism-booking/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05.999999"
)

type postgresStore struct {
	db  database.PgxIface
	log *zap.Logger
}

// NewPostgresStore stores each collection as a table of the same name.
func NewPostgresStore(db database.PgxIface, log *zap.Logger) BookingStore {
	return &postgresStore{
		db:  db,
		log: log.With(zap.String("store", "postgres")),
	}
}

func (s *postgresStore) Insert(ctx context.Context, collection string, record entity.Record) ([]entity.Record, error) {
	query, args := buildInsert(collection, record)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		s.log.Error("Failed to insert record",
			zap.Error(err),
			zap.String("collection", collection),
		)
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}

	records, err := collectRecords(rows)
	if err != nil {
		s.log.Error("Failed to read inserted record",
			zap.Error(err),
			zap.String("collection", collection),
		)
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}

	return records, nil
}

func (s *postgresStore) SelectAll(ctx context.Context, collection string) ([]entity.Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s", pgx.Identifier{collection}.Sanitize())

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		s.log.Error("Failed to select records",
			zap.Error(err),
			zap.String("collection", collection),
		)
		return nil, fmt.Errorf("select from %s: %w", collection, err)
	}

	records, err := collectRecords(rows)
	if err != nil {
		s.log.Error("Failed to scan records",
			zap.Error(err),
			zap.String("collection", collection),
		)
		return nil, fmt.Errorf("select from %s: %w", collection, err)
	}

	return records, nil
}

func (s *postgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// buildInsert renders an INSERT ... RETURNING * with columns in sorted order.
func buildInsert(collection string, record entity.Record) (string, []any) {
	table := pgx.Identifier{collection}.Sanitize()
	if len(record) == 0 {
		return fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING *", table), nil
	}

	cols := record.Columns()
	quoted := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		quoted[i] = pgx.Identifier{col}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = record[col]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		table,
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)
	return query, args
}

func collectRecords(rows pgx.Rows) ([]entity.Record, error) {
	defer rows.Close()

	records := []entity.Record{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}

		fields := rows.FieldDescriptions()
		record := make(entity.Record, len(fields))
		for i, fd := range fields {
			if i < len(values) {
				record[fd.Name] = normalizeValue(values[i], fd.DataTypeOID)
			}
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// normalizeValue turns driver values into the JSON the hosted API returns:
// uuids as strings, dates as 2006-01-02 and timestamps without a zone suffix.
func normalizeValue(v any, oid uint32) any {
	switch val := v.(type) {
	case [16]byte:
		return utils.FormatUUIDBytes(val)
	case time.Time:
		switch oid {
		case pgtype.DateOID:
			return val.Format(dateLayout)
		case pgtype.TimestampOID:
			return val.Format(timestampLayout)
		default:
			return val.Format(time.RFC3339Nano)
		}
	default:
		return v
	}
}
