package main

// <constants>
const configJSONErrMsg = `could not serialize config JSON: %s`
const resultJSONErrMsg = `could not serialize result JSON: %s`

// </constants>

// <global-variables>
//   <subset purpose="used by ‘cobra’">
var argRecursive bool
var argOutFile string
var argVerify bool
var argKeepGoing bool
var argNoColor bool
var argConfigOutput bool
var argJSONOutput bool

//   </subset>

//   <subset purpose="used for passing values between ‘cobra’ methods">
var w Output
var log Output
var exitCode int
var cmdError error

//   </subset>
// </global-variables>
