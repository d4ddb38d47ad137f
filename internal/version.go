package internal

// Version is the imagelabel release version
const Version = "0.3.0"
