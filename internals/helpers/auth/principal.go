// internals/helpers/auth/principal.go
package helperAuth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kunci Locals yang diisi auth middleware setelah token terverifikasi.
const (
	LocUserID   = "user_id"
	LocUserRole = "userRole"
	LocClassID  = "class_id"
	LocFullName = "full_name"
)

var ErrNoPrincipal = errors.New("principal tidak ditemukan di context")

// Principal adalah identitas ter-autentikasi yang dipegang satu request.
// Setiap operasi menerima Principal secara eksplisit — tidak ada state global.
type Principal struct {
	UserID   int
	Role     string
	FullName string
	ClassID  *int // hanya terisi untuk siswa yang punya kelas
}

// GetPrincipal membaca principal dari Locals (diset auth middleware).
func GetPrincipal(c *fiber.Ctx) (Principal, error) {
	id, ok := c.Locals(LocUserID).(int)
	if !ok {
		return Principal{}, ErrNoPrincipal
	}
	role, ok := c.Locals(LocUserRole).(string)
	if !ok || role == "" {
		return Principal{}, ErrNoPrincipal
	}

	p := Principal{UserID: id, Role: role}
	if name, ok := c.Locals(LocFullName).(string); ok {
		p.FullName = name
	}
	if classID, ok := c.Locals(LocClassID).(int); ok {
		p.ClassID = &classID
	}
	return p, nil
}

// StorePrincipal menyimpan principal ke Locals (dipanggil auth middleware).
func StorePrincipal(c *fiber.Ctx, p Principal) {
	c.Locals(LocUserID, p.UserID)
	c.Locals(LocUserRole, p.Role)
	c.Locals(LocFullName, p.FullName)
	if p.ClassID != nil {
		c.Locals(LocClassID, *p.ClassID)
	}
}
