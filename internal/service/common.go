package service

import (
	"io"
	"time"

	"github.com/lshigami/lms/internal/model"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID     uint
	RoleID uint
}

// ActsFor reports whether the actor may work on studentID's records. Staff
// may act for anyone, a student only for themself.
func (a Actor) ActsFor(studentID uint) bool {
	return a.RoleID != model.RoleStudent || a.ID == studentID
}

// FileUpload is one uploaded file as handed over by the HTTP layer.
type FileUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

func parseDate(field, value string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return datatypes.Date{}, invalid(field, "must be a date in YYYY-MM-DD format")
	}
	return datatypes.Date(t), nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
