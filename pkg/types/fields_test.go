package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		raw     string
		wantErr error
		check   func(t *testing.T, r Record)
	}{
		{
			name:  "string field",
			field: "name",
			raw:   "Seaside Cabin",
			check: func(t *testing.T, r Record) {
				assert.Equal(t, "Seaside Cabin", r.(*Place).Name)
			},
		},
		{
			name:  "string field set empty",
			field: "description",
			raw:   "",
			check: func(t *testing.T, r Record) {
				assert.Equal(t, "", r.(*Place).Description)
			},
		},
		{
			name:  "int field",
			field: "number_rooms",
			raw:   "3",
			check: func(t *testing.T, r Record) {
				assert.Equal(t, 3, r.(*Place).NumberRooms)
			},
		},
		{
			name:  "float field",
			field: "latitude",
			raw:   "48.85",
			check: func(t *testing.T, r Record) {
				assert.Equal(t, 48.85, r.(*Place).Latitude)
			},
		},
		{
			name:    "int field bad value",
			field:   "max_guest",
			raw:     "plenty",
			wantErr: ErrBadValue,
		},
		{
			name:    "float field bad value",
			field:   "longitude",
			raw:     "west",
			wantErr: ErrBadValue,
		},
		{
			name:    "protected id",
			field:   "id",
			raw:     "other",
			wantErr: ErrFieldProtected,
		},
		{
			name:    "protected created_at",
			field:   "created_at",
			raw:     "2023-01-01T00:00:00.000000",
			wantErr: ErrFieldProtected,
		},
		{
			name:    "protected discriminator",
			field:   ClassKey,
			raw:     "User",
			wantErr: ErrFieldProtected,
		},
		{
			name:    "unknown field",
			field:   "swimming_pool",
			raw:     "yes",
			wantErr: ErrUnknownField,
		},
		{
			name:    "list field rejected",
			field:   "amenity_ids",
			raw:     "a,b",
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlace()
			p.Name = "Old Name"

			updated, err := SetField(p, tt.field, tt.raw)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, updated)

			// Identity and timestamps carry over unchanged.
			assert.Equal(t, p.ID, updated.RecordID())
			assert.True(t, p.CreatedAt.Equal(updated.Created()))
			assert.True(t, p.UpdatedAt.Equal(updated.Updated()))
		})
	}
}

func TestSetFieldDoesNotMutateOriginal(t *testing.T) {
	u := NewUser()
	u.FirstName = "Betty"

	updated, err := SetField(u, "first_name", "Grace")

	require.NoError(t, err)
	assert.Equal(t, "Betty", u.FirstName)
	assert.Equal(t, "Grace", updated.(*User).FirstName)
}
