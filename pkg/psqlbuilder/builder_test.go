package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "name").
		From("turfs").
		Where(squirrel.Eq{"owner_id": "owner"}).
		Where(squirrel.Eq{"city": "Pune"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM turfs WHERE owner_id = $1 AND city = $2", query)
	assert.Equal(t, []interface{}{"owner", "Pune"}, args)
}

func TestInsert_MultipleRows(t *testing.T) {
	query, args, err := Insert("slots").
		Columns("start_time", "end_time").
		Values("09:00", "10:00").
		Values("10:10", "11:00").
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO slots (start_time,end_time) VALUES ($1,$2),($3,$4)", query)
	assert.Len(t, args, 4)
}
