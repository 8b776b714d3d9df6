package db

import (
	"database/sql"
	_ "embed"
)

//go:embed seeds/catalog.sql
var seedCatalogSQL string

func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id         SERIAL PRIMARY KEY,
    public_id  UUID NOT NULL UNIQUE,
    name       TEXT NOT NULL,
    email      TEXT NOT NULL UNIQUE,
    phone      TEXT,
    created_at TIMESTAMPTZ DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS categories (
    id     SERIAL PRIMARY KEY,
    name   TEXT NOT NULL UNIQUE,
    active BOOLEAN DEFAULT TRUE
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS notification_channels (
    id     SERIAL PRIMARY KEY,
    name   TEXT NOT NULL UNIQUE,
    active BOOLEAN DEFAULT TRUE
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS user_category_subscriptions (
    id          SERIAL PRIMARY KEY,
    user_id     INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
    UNIQUE (user_id, category_id)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS user_channel_preferences (
    id         SERIAL PRIMARY KEY,
    user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    channel_id INTEGER NOT NULL REFERENCES notification_channels(id) ON DELETE CASCADE,
    enabled    BOOLEAN DEFAULT TRUE,
    UNIQUE (user_id, channel_id)
)`); err != nil {
		return err
	}

	// Audit log: one row per delivery attempt, immutable after insert.
	// delivered_at / read_at exist for a future read-receipt feature;
	// no code path updates them today.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS notifications (
    id            SERIAL PRIMARY KEY,
    user_id       INTEGER NOT NULL REFERENCES users(id),
    category      TEXT NOT NULL,
    channel       TEXT NOT NULL,
    status        VARCHAR(20) NOT NULL DEFAULT 'pending',
    content       TEXT NOT NULL,
    metadata      JSONB,
    error_message TEXT,
    created_at    TIMESTAMPTZ DEFAULT now(),
    sent_at       TIMESTAMPTZ,
    delivered_at  TIMESTAMPTZ,
    read_at       TIMESTAMPTZ
)`); err != nil {
		return err
	}

	// 参照クエリに合わせたインデックス(ユーザー別・ステータス別・チャネル別・新着順)
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_status ON notifications(status)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_channel ON notifications(channel)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_created_at ON notifications(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_subscriptions_category_id ON user_category_subscriptions(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_preferences_channel_id ON user_channel_preferences(channel_id)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// status制約追加(既に存在する場合はエラーを無視)
	_, _ = db.Exec(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint
        WHERE conname = 'chk_notification_status'
    ) THEN
        ALTER TABLE notifications ADD CONSTRAINT chk_notification_status
        CHECK (status IN ('pending', 'sent', 'delivered', 'failed'));
    END IF;
END $$;
`)

	// 固定カタログを投入(冪等)
	if _, err := db.Exec(seedCatalogSQL); err != nil {
		return err
	}

	return nil
}
