package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndCheckPassword(t *testing.T) {
	var u UserModel
	require.NoError(t, u.SetPassword("rahasia123"))

	assert.NotEqual(t, "rahasia123", u.Password, "password tidak boleh tersimpan plaintext")
	assert.NoError(t, u.CheckPassword("rahasia123"))
	assert.Error(t, u.CheckPassword("salah"))
}

func TestRoleHelpers(t *testing.T) {
	assert.True(t, (&UserModel{Role: "director"}).IsDirector())
	assert.True(t, (&UserModel{Role: "teacher"}).IsTeacher())
	assert.True(t, (&UserModel{Role: "student"}).IsStudent())
	assert.True(t, (&UserModel{Role: "parent"}).IsParent())
	assert.False(t, (&UserModel{Role: "teacher"}).IsStudent())
}

func TestAttachParentLinkOverwritesPrevious(t *testing.T) {
	oldParent, classID := 4, 2
	student := UserModel{Role: "student", ClassID: &classID, ParentID: &oldParent}

	student.AttachParentLink(9)
	require.NotNil(t, student.ParentID)
	assert.Equal(t, 9, *student.ParentID)

	// penempatan kelas tidak ikut berubah
	require.NotNil(t, student.ClassID)
	assert.Equal(t, 2, *student.ClassID)
}

func TestDetachParentLinkPreservesOtherFields(t *testing.T) {
	parentID, classID := 9, 2
	student := UserModel{Role: "student", FullName: "Budi", ClassID: &classID, ParentID: &parentID}

	student.DetachParentLink()
	assert.Nil(t, student.ParentID)
	require.NotNil(t, student.ClassID)
	assert.Equal(t, "Budi", student.FullName)
}

func TestNormalizeRoleFieldsClearsPlacementForNonStudents(t *testing.T) {
	classID, parentID := 2, 9

	teacher := UserModel{Role: "teacher", ClassID: &classID, ParentID: &parentID}
	teacher.NormalizeRoleFields()
	assert.Nil(t, teacher.ClassID)
	assert.Nil(t, teacher.ParentID)

	student := UserModel{Role: "student", ClassID: &classID, ParentID: &parentID}
	student.NormalizeRoleFields()
	require.NotNil(t, student.ClassID)
	assert.Equal(t, 2, *student.ClassID)
	require.NotNil(t, student.ParentID)
	assert.Equal(t, 9, *student.ParentID)
}
