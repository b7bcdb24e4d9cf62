package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domainblocks/ddd-blocks-go/domain"
)

func Test_Entity_ComparesByIdentifierOnly(t *testing.T) {
	id := domain.NewIdentifier()

	first := domain.EntityWithID(id)
	second := domain.EntityWithID(id)
	third := domain.NewEntity()

	assert.True(t, first.SameIdentityAs(second))
	assert.False(t, first.SameIdentityAs(third))
	assert.True(t, first.ID().Equals(id))
}

func Test_Entity_NewEntityGetsFreshIdentifier(t *testing.T) {
	first := domain.NewEntity()
	second := domain.NewEntity()

	assert.False(t, first.ID().IsZero())
	assert.False(t, first.SameIdentityAs(second))
}

func Test_EqualValues_ComparesValueObjectsByComponents(t *testing.T) {
	type money struct {
		amount   int64
		currency string
	}

	assert.True(t, domain.EqualValues(money{100, "EUR"}, money{100, "EUR"}))
	assert.False(t, domain.EqualValues(money{100, "EUR"}, money{100, "USD"}))
	assert.True(t, domain.EqualValues("alice", "alice"))
}
