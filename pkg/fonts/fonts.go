// Package fonts defines the font stacks used in SVG output.
//
// Fonts are referenced by family name rather than embedded, so exported
// charts stay small and render with whatever the viewer has installed.
// Each stack ends in a generic family as the final fallback.
package fonts

// SansFamily is the default stack for box labels and chart text.
const SansFamily = `'Helvetica Neue', Helvetica, Arial, sans-serif`

// MonoFamily is the stack used by the blueprint style.
const MonoFamily = `'SF Mono', Menlo, Consolas, 'Liberation Mono', monospace`
