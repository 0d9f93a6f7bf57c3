package pptx

// Version of the deck engine, reported by the command-line tools.
const Version = "1.2.0"
