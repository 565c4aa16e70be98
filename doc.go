// Package main implements aocdown, a CLI tool that downloads the daily
// Advent of Code puzzle input for the logged-in user.
//
// # Features
//
//   - Session cookie authentication read from a local config file
//   - Year/day taken from config or defaulted from the current UTC date
//   - Input stored at {year}/{day}/input.txt
//   - Optional project scaffolding via an external init command
//
// # Usage
//
//	aocdown [fetch] [--config PATH] [--dir PATH] [--year N] [--day N] [--scaffold] [--verbose]
//
// # Configuration
//
// Configuration is loaded from .aocdown in the current directory or the path
// specified by the AOCDOWN_CONFIG environment variable. A .env file in the
// current directory is loaded first.
//
//	{"session_cookie": "53616c74...", "year": 2022, "day": 5, "init_scaffold": true}
package main
