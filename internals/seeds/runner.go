// internals/seeds/runner.go
package seeds

import "gorm.io/gorm"

// Run menjalankan seluruh seeder secara berurutan.
func Run(db *gorm.DB) error {
	for _, seed := range []func(*gorm.DB) error{
		SeedDefaultDirector,
	} {
		if err := seed(db); err != nil {
			return err
		}
	}
	return nil
}
