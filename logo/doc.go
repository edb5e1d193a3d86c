// Package logo is the public entry-point of the engine: it derives
// per-variant seeds, selects aesthetics, runs the five construction methods
// in their fixed order, and wraps each body in the canonical document shell.
//
// Both entry-points are pure: identical inputs always produce byte-identical
// SVG strings, so callers may memoize results keyed by (brand, aesthetic,
// industry, seed) and may invoke the package from concurrent goroutines
// without synchronization (every call builds its own stream and config).
//
// Seed policy: the base seed is the explicit option or the brand name; each
// variant re-seeds from "<base>-<index>-<method>-<aesthetic>" so variants
// are independent and a single variant can be regenerated bit-exactly
// without computing its siblings. The last two variants re-roll their
// aesthetic to a value different from the primary one, forcing visual
// variety across the returned set.
package logo
