package readers

import (
	"context"
	"errors"
	"time"

	"github.com/domainblocks/ddd-blocks-go/domain"
	"github.com/domainblocks/ddd-blocks-go/querybuilder"
)

const readersTable = "readers"

// ErrReaderNotFound is returned when no reader matches the given identity.
var ErrReaderNotFound = errors.New("reader not found")

// Repository persists readers through the query builder and publishes
// domain events on the injected event bus after successful writes.
type Repository struct {
	executor querybuilder.Executor
	dialect  querybuilder.Dialect
	eventBus *domain.EventBus
}

// NewRepository creates a reader repository
// using the given executor (typically a dbengine.Engine) and event bus.
func NewRepository(executor querybuilder.Executor, dialect querybuilder.Dialect, eventBus *domain.EventBus) *Repository {
	return &Repository{
		executor: executor,
		dialect:  dialect,
		eventBus: eventBus,
	}
}

// Register stores a new reader and publishes ReaderRegistered.
func (r *Repository) Register(ctx context.Context, reader Reader) error {
	if err := Properties.Validate(reader); err != nil {
		return err
	}

	_, err := querybuilder.NewInsert(readersTable).
		UsingDialect(r.dialect).
		UsingExecutor(r.executor).
		Columns("id", "name", "email", "registered_at").
		Values(reader.ID().String(), reader.Name, reader.Email, reader.RegisteredAt).
		Exec(ctx)
	if err != nil {
		return err
	}

	return r.eventBus.Publish(ctx, envelope(BuildReaderRegistered(reader, time.Now())))
}

// ChangeContact updates a reader's email and publishes ReaderContactChanged.
func (r *Repository) ChangeContact(ctx context.Context, readerID domain.Identifier, email string) error {
	affected, err := querybuilder.NewUpdate(readersTable).
		UsingDialect(r.dialect).
		UsingExecutor(r.executor).
		Assign("email", email).
		Where("id = ?", readerID.String()).
		Exec(ctx)
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrReaderNotFound
	}

	return r.eventBus.Publish(ctx, envelope(BuildReaderContactChanged(readerID, email, time.Now())))
}

// Deregister removes a reader and publishes ReaderDeregistered.
func (r *Repository) Deregister(ctx context.Context, readerID domain.Identifier) error {
	affected, err := querybuilder.NewDelete(readersTable).
		UsingDialect(r.dialect).
		UsingExecutor(r.executor).
		Where("id = ?", readerID.String()).
		Exec(ctx)
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrReaderNotFound
	}

	return r.eventBus.Publish(ctx, envelope(BuildReaderDeregistered(readerID, time.Now())))
}

// FindByID loads a single reader by identity.
func (r *Repository) FindByID(ctx context.Context, readerID domain.Identifier) (Reader, error) {
	rows, err := querybuilder.NewSelect("id", "name", "email", "registered_at").
		UsingDialect(r.dialect).
		UsingExecutor(r.executor).
		From(readersTable).
		Where("id = ?", readerID.String()).
		Limit(1).
		Fetch(ctx)
	if err != nil {
		return Reader{}, err
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return Reader{}, ErrReaderNotFound
	}

	return scanReader(rows)
}

// FindRegisteredSince loads readers registered at or after the given time,
// newest first, at most limit rows.
func (r *Repository) FindRegisteredSince(ctx context.Context, since time.Time, limit int64) ([]Reader, error) {
	rows, err := querybuilder.NewSelect("id", "name", "email", "registered_at").
		UsingDialect(r.dialect).
		UsingExecutor(r.executor).
		From(readersTable).
		Where("registered_at >= ?", since).
		OrderBy("registered_at", querybuilder.Desc).
		Limit(limit).
		Fetch(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	readers := make([]Reader, 0)
	for rows.Next() {
		reader, scanErr := scanReader(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		readers = append(readers, reader)
	}

	return readers, nil
}

func scanReader(rows querybuilder.Rows) (Reader, error) {
	var (
		id           string
		name         string
		email        string
		registeredAt time.Time
	)

	if err := rows.Scan(&id, &name, &email, &registeredAt); err != nil {
		return Reader{}, err
	}

	readerID, err := domain.IdentifierFromString(id)
	if err != nil {
		return Reader{}, err
	}

	return ReaderWithID(readerID, name, email, registeredAt), nil
}
