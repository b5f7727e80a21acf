package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS journal (
    seq          INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id   TEXT NOT NULL,
    kind         TEXT NOT NULL,
    habit_id     INTEGER NOT NULL DEFAULT 0,
    habit_name   TEXT NOT NULL DEFAULT '',
    detail       TEXT NOT NULL DEFAULT '',
    at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_journal_kind ON journal(kind);
`
