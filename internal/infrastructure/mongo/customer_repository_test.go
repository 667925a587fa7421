package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamirban/tamirban-api/internal/domain/entity"
	"github.com/tamirban/tamirban-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
)

// customerQuery keys must name fields that actually exist on a stored
// customer document, otherwise a filter silently matches nothing. Marshal a
// fully populated customer and check every generated key against it.
func TestCustomerQuery_KeysMatchStoredDocument(t *testing.T) {
	now := time.Now()
	c := entity.Customer{
		ID:                 "cust-1",
		Name:               "تعمیرگاه نمونه",
		Code:               "TB-001",
		Phones:             []string{"09121234567"},
		Email:              "shop@tamirban.ir",
		City:               "تهران",
		Province:           "تهران",
		Status:             entity.CustomerStatusActive,
		Tags:               []string{"vip"},
		GeoLocation:        &entity.GeoLocation{Latitude: 35.7, Longitude: 51.4},
		AssignedMarketerID: "mk-1",
		SearchText:         "folded",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	raw, err := bson.Marshal(c)
	require.NoError(t, err)
	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	q := customerQuery(repository.CustomerFilter{
		Status:     entity.CustomerStatusActive,
		MarketerID: "mk-1",
		City:       "تهران",
		Search:     "folded",
		Tags:       []string{"vip"},
		RequireGeo: true,
	})
	require.NotEmpty(t, q)

	for key := range q {
		_, ok := doc[key]
		assert.True(t, ok, "filter key %q not present in stored document", key)
	}
}

// The marketer filter targets the assignedMarketerId field.
func TestCustomerQuery_MarketerFilterKey(t *testing.T) {
	q := customerQuery(repository.CustomerFilter{MarketerID: "mk-1"})
	assert.Equal(t, bson.M{"assignedMarketerId": "mk-1"}, q)
}

func TestCustomerQuery_EmptyFilterMatchesAll(t *testing.T) {
	assert.Empty(t, customerQuery(repository.CustomerFilter{}))
}
