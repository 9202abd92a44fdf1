package version

// Current is the released version of the sorting tool, without a "v" prefix.
const Current = "1.3.0"
