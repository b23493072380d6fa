package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone_number TEXT,
		role TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		country TEXT,
		communication_preferences TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 0,
		email_verification_token TEXT,
		email_verification_expires DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createFarmTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE farms (
		id TEXT PRIMARY KEY,
		farmer_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		location TEXT,
		flock_information TEXT,
		documents TEXT,
		verification_status TEXT NOT NULL DEFAULT 'pending',
		verified_by TEXT,
		verification_date DATETIME,
		verification_notes TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createInvestmentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE investments (
		id TEXT PRIMARY KEY,
		investor_id TEXT NOT NULL,
		type TEXT NOT NULL,
		duration_days INTEGER,
		age_package TEXT,
		quantity INTEGER NOT NULL,
		unit_price REAL NOT NULL,
		total_amount REAL NOT NULL,
		profit_percentage REAL NOT NULL,
		insurance_fee REAL NOT NULL,
		current_profit REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending_payment',
		start_date DATETIME,
		end_date DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createFundContributionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE fund_contributions (
		id TEXT PRIMARY KEY,
		contributor_id TEXT NOT NULL,
		contributor_type TEXT NOT NULL,
		amount REAL NOT NULL,
		contribution_type TEXT NOT NULL,
		related_investment_id TEXT,
		created_at DATETIME
	);`)
}

func createInsuranceClaimTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE insurance_claims (
		id TEXT PRIMARY KEY,
		farm_id TEXT NOT NULL,
		claim_type TEXT NOT NULL,
		description TEXT NOT NULL,
		evidence TEXT,
		requested_amount REAL NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		approved_amount REAL,
		reviewed_by TEXT,
		review_date DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createMarketProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE market_products (
		id TEXT PRIMARY KEY,
		seller_id TEXT NOT NULL,
		farm_id TEXT NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT,
		price REAL NOT NULL,
		quantity INTEGER NOT NULL,
		unit TEXT NOT NULL,
		images TEXT,
		status TEXT NOT NULL DEFAULT 'available',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOrderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		buyer_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		total_amount REAL NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		shipping_address TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSettingTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE settings (
		key TEXT PRIMARY KEY,
		value TEXT,
		updated_at DATETIME
	);`)
}
