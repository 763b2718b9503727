// Package consts holds small build-time flags shared across the module.
package consts

// Mode_Debug gates assertions (assert.T). Flip to true in a debug build.
const Mode_Debug = false
