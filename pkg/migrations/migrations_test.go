package migrations_test

import (
	"context"
	"os"
	"path"

	"github.com/voltcheck/voltcheck/internal/config"
	"github.com/voltcheck/voltcheck/internal/store"
	"github.com/voltcheck/voltcheck/internal/store/model"
	"github.com/voltcheck/voltcheck/pkg/migrations"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("migrations", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	tableExists := func(name string) bool {
		count := 0
		tx := gormdb.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&count)
		Expect(tx.Error).To(BeNil())
		return count == 1
	}

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
	})

	AfterAll(func() {
		s.Close()
	})

	Context("store migrations", Ordered, func() {
		It("fails to migrate the db -- migration folder does not exist", func() {
			cfg := config.NewDefault()
			cfg.Service.MigrationFolder = "some folder"
			err := migrations.MigrateStore(gormdb, cfg)
			Expect(err).NotTo(BeNil())
		})

		It("fails to migrate the db -- migration folder is a file", func() {
			currentFolder, err := os.Getwd()
			Expect(err).To(BeNil())
			cfg := config.NewDefault()
			cfg.Service.MigrationFolder = path.Join(currentFolder, "migrations.go")
			err = migrations.MigrateStore(gormdb, cfg)
			Expect(err).NotTo(BeNil())
		})

		It("successfully migrates the db from a folder", func() {
			currentFolder, err := os.Getwd()
			Expect(err).To(BeNil())
			cfg := config.NewDefault()
			cfg.Service.MigrationFolder = path.Join(currentFolder, "sql")

			Expect(migrations.MigrateStore(gormdb, cfg)).To(BeNil())

			for _, table := range []string{"jobs", "reports", "goose_db_version"} {
				Expect(tableExists(table)).To(BeTrue())
			}
		})

		It("successfully migrates the db with the embedded migrations", func() {
			Expect(migrations.MigrateStore(gormdb, config.NewDefault())).To(BeNil())
			Expect(tableExists("jobs")).To(BeTrue())
			Expect(tableExists("reports")).To(BeTrue())
		})

		It("is compatible with the store", func() {
			Expect(migrations.MigrateStore(gormdb, config.NewDefault())).To(BeNil())

			job, err := s.Job().Create(context.TODO(), model.Job{Number: "J-1", Customer: "Acme"})
			Expect(err).To(BeNil())
			got, err := s.Job().Get(context.TODO(), job.ID)
			Expect(err).To(BeNil())
			Expect(got.Number).To(Equal("J-1"))
		})

		AfterEach(func() {
			gormdb.Exec("DROP TABLE IF EXISTS reports;")
			gormdb.Exec("DROP TABLE IF EXISTS jobs;")
			gormdb.Exec("DROP TABLE IF EXISTS goose_db_version;")
		})
	})
})
