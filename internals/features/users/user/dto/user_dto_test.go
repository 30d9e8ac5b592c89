package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequestNormalize(t *testing.T) {
	req := CreateUserRequest{
		Username: "  Budi.Santoso ",
		FullName: " Budi Santoso ",
		Role:     " student ",
	}
	req.Normalize()

	assert.Equal(t, "budi.santoso", req.Username)
	assert.Equal(t, "Budi Santoso", req.FullName)
	assert.Equal(t, "student", req.Role)
}

func TestCreateUserRequestToModelClearsClassForNonStudent(t *testing.T) {
	classID := 4

	teacher := CreateUserRequest{Username: "guru", FullName: "Guru", Role: "teacher", ClassID: &classID}
	m := teacher.ToModel()
	assert.Nil(t, m.ClassID, "guru tidak boleh membawa penempatan kelas")
	assert.True(t, m.IsActive)

	student := CreateUserRequest{Username: "siswa", FullName: "Siswa", Role: "student", ClassID: &classID}
	sm := student.ToModel()
	require.NotNil(t, sm.ClassID)
	assert.Equal(t, 4, *sm.ClassID)
}

func TestUpdateUserRequestNormalizeOnlyTouchesProvidedFields(t *testing.T) {
	username := " ADMIN "
	req := UpdateUserRequest{Username: &username}
	req.Normalize()

	require.NotNil(t, req.Username)
	assert.Equal(t, "admin", *req.Username)
	assert.Nil(t, req.FullName)
	assert.Nil(t, req.Role)
}
