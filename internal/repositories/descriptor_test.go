package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gema-backend/pkg/errors"
)

func TestDescriptorPKWhereSimpleKey(t *testing.T) {
	where, err := UserDescriptor.PKWhere(map[string]interface{}{"uuid": "abc"})
	require.NoError(t, err)

	sql, args, err := where.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "uuid = ?", sql)
	assert.Equal(t, []interface{}{"abc"}, args)
}

func TestDescriptorPKWhereCompositeKeyKeepsDeclarationOrder(t *testing.T) {
	where, err := EquipmentOperationalLocationDescriptor.PKWhere(map[string]interface{}{
		"location_technical_code": "BQ-A1",
		"equipment_uuid":          "abc",
	})
	require.NoError(t, err)

	sql, args, err := where.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(equipment_uuid = ? AND location_technical_code = ?)", sql)
	assert.Equal(t, []interface{}{"abc", "BQ-A1"}, args)
}

func TestDescriptorPKWhereMissingField(t *testing.T) {
	_, err := EquipmentOperationalLocationDescriptor.PKWhere(map[string]interface{}{
		"equipment_uuid": "abc",
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestDescriptorPKWhereWrongField(t *testing.T) {
	_, err := EquipmentOperationalLocationDescriptor.PKWhere(map[string]interface{}{
		"equipment_uuid": "abc",
		"serial_number":  "sn-1",
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
