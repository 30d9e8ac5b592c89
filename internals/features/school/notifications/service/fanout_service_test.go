package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRowsOneRowPerReceiver(t *testing.T) {
	rows := BuildRows(1, "Pengumuman", "Besok upacara", []int{10, 11, 12})
	require.Len(t, rows, 3)

	for i, rid := range []int{10, 11, 12} {
		assert.Equal(t, 1, rows[i].SenderID)
		assert.Equal(t, rid, rows[i].ReceiverID)
		assert.Equal(t, "Pengumuman", rows[i].Title)
		assert.Equal(t, "Besok upacara", rows[i].Message)
		assert.False(t, rows[i].IsRead, "notifikasi baru harus belum terbaca")
	}
}

func TestBuildRowsEmptyReceivers(t *testing.T) {
	rows := BuildRows(1, "x", "y", nil)
	assert.Empty(t, rows)
}
