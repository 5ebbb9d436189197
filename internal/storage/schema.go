package storage

// SQL schema for the run archive. Applied on every open; all
// statements are idempotent.
const sqlSchema = `
CREATE TABLE IF NOT EXISTS runs (
    run_id      TEXT PRIMARY KEY,
    created_at  TIMESTAMP NOT NULL,
    total       INTEGER NOT NULL,
    warnings    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS run_fields (
    run_id          TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    field_key       TEXT NOT NULL,
    answered        INTEGER NOT NULL,
    main_buckets    INTEGER NOT NULL,
    other_values    INTEGER NOT NULL,
    PRIMARY KEY (run_id, field_key)
);

CREATE TABLE IF NOT EXISTS dup_findings (
    run_id      TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    row_i       INTEGER NOT NULL,
    row_j       INTEGER NOT NULL,
    stamp_a     TEXT NOT NULL DEFAULT '',
    stamp_b     TEXT NOT NULL DEFAULT '',
    equal_count INTEGER NOT NULL,
    diff_count  INTEGER NOT NULL,
    empty_both  INTEGER NOT NULL,
    empty_a     INTEGER NOT NULL,
    empty_b     INTEGER NOT NULL,
    PRIMARY KEY (run_id, row_i, row_j)
);

CREATE INDEX IF NOT EXISTS idx_run_fields_run ON run_fields(run_id);
CREATE INDEX IF NOT EXISTS idx_dup_findings_run ON dup_findings(run_id);
`
