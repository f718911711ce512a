// Package testutil provides shared fixtures for cellspace tests: a minimal
// placed agent type and helpers for filling spaces with occupants.
package testutil
