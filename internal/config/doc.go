// Package config manages the persistent user configuration for gfpint.
//
// Configuration is stored as a single YAML file in the platform-appropriate
// config directory (XDG on Linux/macOS, LOCALAPPDATA on Windows). It holds
// the submitter identity attached to beer reports, the backend endpoint,
// venue bookmarks, and wizard preferences.
//
// The registry is loaded lazily and cached for the process lifetime. Saves
// are atomic (write to temp file, rename) so a crash never leaves a
// half-written config behind.
//
// Nothing security-sensitive lives here: the user id is the same public
// identifier the backend shows next to community reports.
package config
