// Package schedule derives the conference schedule view model from the talk,
// speaker and stage collections.
//
// The derivation runs in dependency order: Enrich resolves references and
// localizes times, AvailableDays and the ActiveDay binding pick the day,
// TalksForDay filters it, ComputeTimeRange sizes the grid and TalkStyle and
// ComputeTimeLine position cards and the live indicator. All of these are pure
// functions; View adds the URL-synced active day and the minute ticker that
// drives the "now" indicator.
package schedule
