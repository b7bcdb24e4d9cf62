package readers_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domainblocks/ddd-blocks-go/domain"
	"github.com/domainblocks/ddd-blocks-go/example/readers"
	"github.com/domainblocks/ddd-blocks-go/querybuilder"
)

// scriptedExecutor records forwarded statements and serves canned rows.
type scriptedExecutor struct {
	lastSQL      string
	lastParams   []any
	rowsAffected int64
	rows         [][]any
}

func (s *scriptedExecutor) Query(_ context.Context, sql querybuilder.SQLString, params ...any) (querybuilder.Rows, error) {
	s.lastSQL = sql
	s.lastParams = params

	return &scriptedRows{rows: s.rows}, nil
}

func (s *scriptedExecutor) Exec(_ context.Context, sql querybuilder.SQLString, params ...any) (querybuilder.Result, error) {
	s.lastSQL = sql
	s.lastParams = params

	return scriptedResult{rowsAffected: s.rowsAffected}, nil
}

type scriptedRows struct {
	rows [][]any
	pos  int
}

func (r *scriptedRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++

	return true
}

func (r *scriptedRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]

	for i, value := range row {
		switch target := dest[i].(type) {
		case *string:
			*target = value.(string)
		case *time.Time:
			*target = value.(time.Time)
		}
	}

	return nil
}

func (r *scriptedRows) Close() error { return nil }

type scriptedResult struct {
	rowsAffected int64
}

func (r scriptedResult) RowsAffected() (int64, error) { return r.rowsAffected, nil }

func Test_Repository_Register_StoresReaderAndPublishesEvent(t *testing.T) {
	executor := &scriptedExecutor{rowsAffected: 1}
	bus := domain.NewEventBus()

	var published []domain.EventEnvelope
	bus.Subscribe(readers.ReaderRegisteredEventType, func(_ context.Context, envelope domain.EventEnvelope) error {
		published = append(published, envelope)
		return nil
	})

	repository := readers.NewRepository(executor, querybuilder.DialectPostgres, bus)
	reader := readers.NewReader("Alice", "alice@example.com", time.Now())

	err := repository.Register(context.Background(), reader)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO readers (id, name, email, registered_at) VALUES ($1, $2, $3, $4)", executor.lastSQL)
	assert.Equal(t, reader.ID().String(), executor.lastParams[0])
	assert.Equal(t, "Alice", executor.lastParams[1])

	require.Len(t, published, 1)
	event, ok := published[0].DomainEvent.(readers.ReaderRegistered)
	require.True(t, ok)
	assert.Equal(t, reader.ID().String(), event.ReaderID)
	assert.NotEmpty(t, published[0].EventMetadata.MessageID)
}

func Test_Repository_Register_RejectsInvalidReader(t *testing.T) {
	executor := &scriptedExecutor{}
	repository := readers.NewRepository(executor, querybuilder.DialectPostgres, domain.NewEventBus())

	invalid := readers.NewReader("", "not-an-email", time.Now())

	err := repository.Register(context.Background(), invalid)
	assert.ErrorIs(t, err, domain.ErrPropertyValidationFailed)
	assert.Empty(t, executor.lastSQL)
}

func Test_Repository_ChangeContact_UpdatesAndPublishes(t *testing.T) {
	executor := &scriptedExecutor{rowsAffected: 1}
	bus := domain.NewEventBus()

	var published []domain.EventEnvelope
	bus.Subscribe(readers.ReaderContactChangedEventType, func(_ context.Context, envelope domain.EventEnvelope) error {
		published = append(published, envelope)
		return nil
	})

	repository := readers.NewRepository(executor, querybuilder.DialectPostgres, bus)
	readerID := domain.NewIdentifier()

	err := repository.ChangeContact(context.Background(), readerID, "new@example.com")
	require.NoError(t, err)

	assert.Equal(t, "UPDATE readers SET email = $1 WHERE id = $2", executor.lastSQL)
	assert.Equal(t, []any{"new@example.com", readerID.String()}, executor.lastParams)
	assert.Len(t, published, 1)
}

func Test_Repository_ChangeContact_UnknownReader(t *testing.T) {
	executor := &scriptedExecutor{rowsAffected: 0}
	repository := readers.NewRepository(executor, querybuilder.DialectPostgres, domain.NewEventBus())

	err := repository.ChangeContact(context.Background(), domain.NewIdentifier(), "new@example.com")
	assert.ErrorIs(t, err, readers.ErrReaderNotFound)
}

func Test_Repository_FindByID_ReconstitutesReader(t *testing.T) {
	readerID := domain.NewIdentifier()
	registeredAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	executor := &scriptedExecutor{
		rows: [][]any{{readerID.String(), "Alice", "alice@example.com", registeredAt}},
	}
	repository := readers.NewRepository(executor, querybuilder.DialectPostgres, domain.NewEventBus())

	reader, err := repository.FindByID(context.Background(), readerID)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, email, registered_at FROM readers WHERE id = $1 LIMIT $2", executor.lastSQL)
	assert.True(t, reader.ID().Equals(readerID))
	assert.Equal(t, "Alice", reader.Name)
	assert.Equal(t, registeredAt, reader.RegisteredAt)
}

func Test_Repository_FindByID_NotFound(t *testing.T) {
	executor := &scriptedExecutor{}
	repository := readers.NewRepository(executor, querybuilder.DialectPostgres, domain.NewEventBus())

	_, err := repository.FindByID(context.Background(), domain.NewIdentifier())
	assert.ErrorIs(t, err, readers.ErrReaderNotFound)
}

func Test_Repository_FindRegisteredSince_RendersOrderedLimitedQuery(t *testing.T) {
	executor := &scriptedExecutor{}
	repository := readers.NewRepository(executor, querybuilder.DialectPostgres, domain.NewEventBus())

	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	result, err := repository.FindRegisteredSince(context.Background(), since, 25)
	require.NoError(t, err)
	assert.Empty(t, result)

	assert.Equal(t,
		"SELECT id, name, email, registered_at FROM readers WHERE registered_at >= $1 ORDER BY registered_at DESC LIMIT $2",
		executor.lastSQL)
	assert.Equal(t, []any{since, int64(25)}, executor.lastParams)
}

func Test_Reader_PropertyTable(t *testing.T) {
	reader := readers.NewReader("Alice", "alice@example.com", time.Now())

	name, err := readers.Properties.Get(reader, "name")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	require.NoError(t, readers.Properties.Set(&reader, "email", "new@example.com"))
	assert.Equal(t, "new@example.com", reader.Email)

	assert.NoError(t, readers.Properties.Validate(reader))
}
