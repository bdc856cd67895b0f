// Package config persists user settings (board capacity, canvas size,
// last dialog directory, command timeout) through Fyne preferences.
package config
