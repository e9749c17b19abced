package cli

import (
	"testing"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumOptions(t *testing.T) {
	views := enumOptions(domain.Views)
	require.Len(t, views, len(domain.Views))
	assert.Equal(t, "None", views[0].Key)
	assert.Equal(t, domain.ViewNone, views[0].Value)
	assert.Equal(t, "Sea", views[1].Key)

	types := enumOptions(domain.PropertyTypes)
	require.Len(t, types, 5)
	assert.Equal(t, "Apart-villa", types[2].Key)
	assert.Equal(t, domain.PropertyApartVilla, types[2].Value)

	rooms := enumOptions(domain.RoomChoices)
	assert.Equal(t, "Studio", rooms[0].Key)
	assert.Equal(t, "6", rooms[len(rooms)-1].Key)

	floors := enumOptions(domain.FloorTypes)
	require.Len(t, floors, 2)
	assert.Equal(t, domain.FloorTypeRow, floors[1].Value)
}
