// cmd/initdb — migrasi skema + seed akun direktur awal.
package main

import (
	"log"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	databases.ConnectDB()

	if err := databases.AutoMigrateAll(databases.DB); err != nil {
		log.Fatal("❌ Migrasi gagal:", err)
	}
	log.Println("✅ Migrasi selesai")

	if err := seeds.Run(databases.DB); err != nil {
		log.Fatal("❌ Seed gagal:", err)
	}
	log.Println("✅ Seed selesai")
}
