package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/chemstock/backend/internal/domain/hr"
	"github.com/chemstock/backend/internal/domain/production"
	"github.com/chemstock/backend/internal/domain/shared/valueobject"
	"github.com/chemstock/backend/internal/domain/stock"
)

func setupDashboardTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	for _, stmt := range []string{
		`CREATE TABLE raw_material_lots (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			mass_kg DECIMAL NOT NULL,
			density_kg_l DECIMAL NOT NULL,
			volume_l DECIMAL NOT NULL,
			unit_cost DECIMAL NOT NULL,
			entry_date DATE,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE employees (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			role TEXT NOT NULL,
			salary DECIMAL NOT NULL,
			hire_date DATE,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE finished_batches (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			mass_total_kg DECIMAL NOT NULL,
			volume_total_l DECIMAL NOT NULL,
			final_density DECIMAL NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

// newMockDashboardRepository backs the repository with a mocked postgres
// connection for the queries that use postgres-only SQL.
func newMockDashboardRepository(t *testing.T) (*GormDashboardRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormDashboardRepository(gormDB), mock, mockDB
}

func mustDate(t *testing.T, value string) valueobject.EntryDate {
	t.Helper()
	d, err := valueobject.NewEntryDate(value)
	require.NoError(t, err)
	return d
}

func TestGormDashboardRepository_PurchaseEntries(t *testing.T) {
	t.Run("returns cost and entry date of every lot", func(t *testing.T) {
		db := setupDashboardTestDB(t)
		lots := NewGormLotRepository(db)
		repo := NewGormDashboardRepository(db)
		ctx := context.Background()

		first, err := stock.NewLot("Solvent A", decimal.NewFromInt(100), decimal.NewFromFloat(1.25), decimal.NewFromInt(500), mustDate(t, "2025-03-01"))
		require.NoError(t, err)
		second, err := stock.NewLot("Solvent B", decimal.NewFromInt(50), decimal.NewFromFloat(0.8), decimal.NewFromInt(200), mustDate(t, "2025-02-28"))
		require.NoError(t, err)
		require.NoError(t, lots.Save(ctx, first))
		require.NoError(t, lots.Save(ctx, second))

		entries, err := repo.PurchaseEntries(ctx)

		assert.NoError(t, err)
		require.Len(t, entries, 2)

		byCost := map[string]string{}
		for _, e := range entries {
			byCost[e.UnitCost.String()] = e.EntryDate.String()
		}
		assert.Equal(t, "2025-03-01", byCost["500"])
		assert.Equal(t, "2025-02-28", byCost["200"])
	})

	t.Run("returns empty slice for empty store", func(t *testing.T) {
		repo := NewGormDashboardRepository(setupDashboardTestDB(t))

		entries, err := repo.PurchaseEntries(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestGormDashboardRepository_PayrollEntries(t *testing.T) {
	t.Run("returns salary, hire date and active flag", func(t *testing.T) {
		db := setupDashboardTestDB(t)
		employees := NewGormEmployeeRepository(db)
		repo := NewGormDashboardRepository(db)
		ctx := context.Background()

		active, err := hr.NewEmployee("Maria Santos", "Chemist", decimal.NewFromInt(3000), mustDate(t, "2025-01-15"))
		require.NoError(t, err)
		former, err := hr.NewEmployee("Jorge Lima", "Operator", decimal.NewFromInt(2500), mustDate(t, "2024-06-01"))
		require.NoError(t, err)
		require.NoError(t, former.Update(former.Name, former.Role, former.Salary, former.HireDate, false))
		require.NoError(t, employees.Save(ctx, active))
		require.NoError(t, employees.Save(ctx, former))

		entries, err := repo.PayrollEntries(ctx)

		assert.NoError(t, err)
		require.Len(t, entries, 2)

		bySalary := map[string]bool{}
		for _, e := range entries {
			bySalary[e.Salary.String()] = e.Active
		}
		assert.True(t, bySalary["3000"])
		assert.False(t, bySalary["2500"])
	})
}

func TestGormDashboardRepository_SaleEntries(t *testing.T) {
	t.Run("reduces sale timestamps to calendar dates", func(t *testing.T) {
		repo, mock, mockDB := newMockDashboardRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"quantity_kg", "sold_on"}).
			AddRow("10.5", "2025-03-04").
			AddRow("3", "2025-02-20")

		mock.ExpectQuery(`SELECT quantity_kg, to_char\(created_at, 'YYYY-MM-DD'\) AS sold_on FROM "sales"`).
			WillReturnRows(rows)

		entries, err := repo.SaleEntries(context.Background())

		assert.NoError(t, err)
		require.Len(t, entries, 2)
		assert.True(t, entries[0].QuantityKg.Equal(decimal.NewFromFloat(10.5)))
		assert.Equal(t, "2025-03-04", entries[0].SoldOn.String())
		assert.Equal(t, "2025-02-20", entries[1].SoldOn.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates query errors", func(t *testing.T) {
		repo, mock, mockDB := newMockDashboardRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT quantity_kg, to_char\(created_at, 'YYYY-MM-DD'\) AS sold_on FROM "sales"`).
			WillReturnError(sql.ErrConnDone)

		entries, err := repo.SaleEntries(context.Background())

		assert.Error(t, err)
		assert.Nil(t, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormDashboardRepository_FinishedMassOnHand(t *testing.T) {
	t.Run("sums mass across all batches", func(t *testing.T) {
		db := setupDashboardTestDB(t)
		batches := NewGormBatchRepository(db)
		repo := NewGormDashboardRepository(db)
		ctx := context.Background()

		first, err := production.NewBatch("Cleaner X", decimal.NewFromInt(30), decimal.NewFromInt(24))
		require.NoError(t, err)
		second, err := production.NewBatch("Cleaner Y", decimal.NewFromInt(12), decimal.NewFromInt(10))
		require.NoError(t, err)
		require.NoError(t, batches.Save(ctx, first))
		require.NoError(t, batches.Save(ctx, second))

		total, err := repo.FinishedMassOnHand(ctx)

		assert.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(42)), "got %s", total)
	})

	t.Run("returns zero for empty store", func(t *testing.T) {
		repo := NewGormDashboardRepository(setupDashboardTestDB(t))

		total, err := repo.FinishedMassOnHand(context.Background())

		assert.NoError(t, err)
		assert.True(t, total.IsZero())
	})
}
