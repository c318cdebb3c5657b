/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemstore_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/itemstore"
	"github.com/suparena/itemstore/storagemodels"
)

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	reg := itemstore.New(itemstore.WithSink(itemstore.WriterSink(&buf)))

	require.NoError(t, reg.Add(ledLight))
	require.NoError(t, reg.Add(fanMotor))
	_, err := reg.FindByID("ITEM002")
	require.NoError(t, err)
	reg.ListByDescription()

	assert.Equal(t, "Successfully added ID : ITEM001\n"+
		"Successfully added ID : ITEM002\n"+
		"Successfully found item, ID : ITEM002 (Desc: Fan Motor, at Aisle 2, Shelf 5)\n"+
		"Description: Fan Motor, Location: Aisle 2, Shelf 5\n"+
		"Description: LED Light, Location: Aisle 3, Shelf 1\n", buf.String())
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	reg := itemstore.New(
		itemstore.WithSink(itemstore.NewLogSink(logger, slog.LevelDebug)),
		itemstore.WithClock(func() time.Time { return at }),
	)

	require.NoError(t, reg.Add(ledLight))

	out := buf.String()
	assert.Contains(t, out, `"msg":"item added"`)
	assert.Contains(t, out, `"id":"ITEM001"`)
	assert.Contains(t, out, `"description":"LED Light"`)
	assert.Contains(t, out, `"location":"Aisle 3, Shelf 1"`)
	assert.Contains(t, out, `"at":"2025-03-01T12:00:00.000Z"`)
}

func TestLogSink_BelowLevelIsDropped(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	sink := itemstore.NewLogSink(logger, slog.LevelDebug)

	sink.Notify(storagemodels.NewEvent(storagemodels.ActionAdded, ledLight, storagemodels.Event{}.At))

	assert.Empty(t, buf.String())
}

func TestMultiSink(t *testing.T) {
	a, b := &itemstore.Recorder{}, &itemstore.Recorder{}
	reg := itemstore.New(itemstore.WithSink(itemstore.MultiSink(a, nil, b)))

	require.NoError(t, reg.Add(ledLight))
	require.NoError(t, reg.Remove("ITEM001"))

	want := []storagemodels.Action{storagemodels.ActionAdded, storagemodels.ActionRemoved}
	assert.Equal(t, want, a.Actions())
	assert.Equal(t, want, b.Actions())
}
