// Package aesthetic maps a coarse visual style label to the numeric
// configuration that steers all downstream geometry.
//
// The style set is closed: Minimalist, Tech, Nature, Bold. Resolve produces
// an immutable Config whose fields are either fixed per style or drawn once
// from small candidate sets through the caller's random stream. A
// construction method must call Resolve at most once per invocation so every
// shape inside one mark shares a single coherent configuration.
//
//	Style       stroke   corners  snap  organic  character
//	Minimalist  2|4      soft     —     low      sparse, airy
//	Tech        4|6      square   45°   none     grid-aligned, dense
//	Nature      2|4      round    —     high     curved, flowing
//	Bold        6|8      mixed    90°   low      heavy, filled
package aesthetic
