// Package locate finds station files by naming convention.
//
// Lookups:
//   - GlobByExtension: flat, sorted glob of directory/prefix*suffix*.ext
//   - FindConfigFile: the station config (dfnstation.cfg) in a directory
//   - Finder.FindLogFile: recursive search for a dated log file such as
//     2017-06-30_DFNSMALL15_log_interval.txt
//
// Recursive search runs either as a native parallel walk (fastwalk) or by
// spawning find(1). Both report ErrLogFileNotFound when nothing matches.
//
// Example Usage:
//
//	raws, err := locate.GlobByExtension([]string{"NEF", "CR2"}, dir, "", "")
//	cfg := locate.FindConfigFile(dir, logger)
//	path, err := locate.NewFinder(locate.BackendWalk, logger).FindLogFile(ctx, dir, "_log_interval", "txt", "")
package locate
