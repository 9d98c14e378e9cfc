// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package catalog loads the board game catalog the planner works on.
//
// A source is one of:
//   - a local BoardGameGeek style CSV export (*.csv)
//   - a local JSON array of game objects (*.json)
//   - an S3 object, s3://bucket/key.csv or s3://bucket/key.json
//   - "-" for CSV on stdin
//
// CSV headers and JSON keys are matched through the column registry, so both
// the BoardGameGeek names (objectname, average, avgweight, ...) and the
// bgarena column names (name, rating, difficulty, ...) are accepted. Unknown
// headers are ignored. A numeric cell that cannot be parsed fails the load.
package catalog
