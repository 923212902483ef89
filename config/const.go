package config

import "strings"

// AppVersion is the version of the application, set at build time with -ldflags.
var AppVersion = "0.1.0"

// AppName is the name of the application.
const AppName = "Wallfetch"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// DefaultDirectoryFile is the file holding the configured download directory,
// relative to the working directory.
const DefaultDirectoryFile = "directory.txt"

// DefaultServerPort is the loopback port of the local invocation API.
const DefaultServerPort = 49453
