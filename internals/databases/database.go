package databases

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	gradeModel "sekolahku_backend/internals/features/school/grades/model"
	holidayModel "sekolahku_backend/internals/features/school/holidays/model"
	lessonPlanModel "sekolahku_backend/internals/features/school/lesson_plans/model"
	messageModel "sekolahku_backend/internals/features/school/messages/model"
	notificationModel "sekolahku_backend/internals/features/school/notifications/model"
	scheduleModel "sekolahku_backend/internals/features/school/schedules/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sekolahku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrateAll membuat semua tabel lalu memasang constraint FK + unique.
// Dipanggil sekali dari cmd/initdb (bukan setiap start server).
func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&classModel.ClassModel{},
		&userModel.UserModel{},
		&subjectModel.SubjectModel{},
		&scheduleModel.ScheduleModel{},
		&attendanceModel.AttendanceModel{},
		&gradeModel.GradeModel{},
		&lessonPlanModel.LessonPlanModel{},
		&holidayModel.HolidayModel{},
		&notificationModel.NotificationModel{},
		&messageModel.MessageModel{},
		&authModel.TokenBlacklist{},
	); err != nil {
		return err
	}
	return applyConstraints(db)
}

// applyConstraints memasang relasi antar tabel lewat SQL mentah supaya arah
// import antar package model tetap satu arah (users ↔ classes saling menunjuk).
func applyConstraints(db *gorm.DB) error {
	stmts := []string{
		// users
		`ALTER TABLE users DROP CONSTRAINT IF EXISTS fk_users_class;
		 ALTER TABLE users ADD CONSTRAINT fk_users_class
		   FOREIGN KEY (class_id) REFERENCES classes(id) ON DELETE SET NULL`,
		`ALTER TABLE users DROP CONSTRAINT IF EXISTS fk_users_parent;
		 ALTER TABLE users ADD CONSTRAINT fk_users_parent
		   FOREIGN KEY (parent_id) REFERENCES users(id) ON DELETE SET NULL`,

		// classes
		`ALTER TABLE classes DROP CONSTRAINT IF EXISTS fk_classes_teacher;
		 ALTER TABLE classes ADD CONSTRAINT fk_classes_teacher
		   FOREIGN KEY (teacher_id) REFERENCES users(id) ON DELETE SET NULL`,

		// subjects
		`ALTER TABLE subjects DROP CONSTRAINT IF EXISTS fk_subjects_class;
		 ALTER TABLE subjects ADD CONSTRAINT fk_subjects_class
		   FOREIGN KEY (class_id) REFERENCES classes(id) ON DELETE CASCADE`,
		`ALTER TABLE subjects DROP CONSTRAINT IF EXISTS fk_subjects_teacher;
		 ALTER TABLE subjects ADD CONSTRAINT fk_subjects_teacher
		   FOREIGN KEY (teacher_id) REFERENCES users(id) ON DELETE CASCADE`,

		// schedules
		`ALTER TABLE schedules DROP CONSTRAINT IF EXISTS fk_schedules_class;
		 ALTER TABLE schedules ADD CONSTRAINT fk_schedules_class
		   FOREIGN KEY (class_id) REFERENCES classes(id) ON DELETE CASCADE`,
		`ALTER TABLE schedules DROP CONSTRAINT IF EXISTS fk_schedules_subject;
		 ALTER TABLE schedules ADD CONSTRAINT fk_schedules_subject
		   FOREIGN KEY (subject_id) REFERENCES subjects(id) ON DELETE CASCADE`,
		// satu slot per (kelas, hari, jam ke-) — double booking ditolak
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_schedules_class_day_lesson
		   ON schedules (class_id, day_of_week, lesson_number)`,

		// attendance
		`ALTER TABLE attendance DROP CONSTRAINT IF EXISTS fk_attendance_student;
		 ALTER TABLE attendance ADD CONSTRAINT fk_attendance_student
		   FOREIGN KEY (student_id) REFERENCES users(id) ON DELETE CASCADE`,

		// grades
		`ALTER TABLE grades DROP CONSTRAINT IF EXISTS fk_grades_student;
		 ALTER TABLE grades ADD CONSTRAINT fk_grades_student
		   FOREIGN KEY (student_id) REFERENCES users(id) ON DELETE CASCADE`,
		`ALTER TABLE grades DROP CONSTRAINT IF EXISTS fk_grades_subject;
		 ALTER TABLE grades ADD CONSTRAINT fk_grades_subject
		   FOREIGN KEY (subject_id) REFERENCES subjects(id) ON DELETE CASCADE`,

		// lesson_plans
		`ALTER TABLE lesson_plans DROP CONSTRAINT IF EXISTS fk_lesson_plans_subject;
		 ALTER TABLE lesson_plans ADD CONSTRAINT fk_lesson_plans_subject
		   FOREIGN KEY (subject_id) REFERENCES subjects(id) ON DELETE CASCADE`,

		// notifications
		`ALTER TABLE notifications DROP CONSTRAINT IF EXISTS fk_notifications_sender;
		 ALTER TABLE notifications ADD CONSTRAINT fk_notifications_sender
		   FOREIGN KEY (sender_id) REFERENCES users(id) ON DELETE CASCADE`,
		`ALTER TABLE notifications DROP CONSTRAINT IF EXISTS fk_notifications_receiver;
		 ALTER TABLE notifications ADD CONSTRAINT fk_notifications_receiver
		   FOREIGN KEY (receiver_id) REFERENCES users(id) ON DELETE CASCADE`,

		// messages
		`ALTER TABLE messages DROP CONSTRAINT IF EXISTS fk_messages_sender;
		 ALTER TABLE messages ADD CONSTRAINT fk_messages_sender
		   FOREIGN KEY (sender_id) REFERENCES users(id) ON DELETE CASCADE`,
		`ALTER TABLE messages DROP CONSTRAINT IF EXISTS fk_messages_receiver;
		 ALTER TABLE messages ADD CONSTRAINT fk_messages_receiver
		   FOREIGN KEY (receiver_id) REFERENCES users(id) ON DELETE CASCADE`,
	}

	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			return fmt.Errorf("apply constraint: %w", err)
		}
	}
	return nil
}
