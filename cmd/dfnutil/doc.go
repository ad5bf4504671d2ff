// Command dfnutil is the command line front end for the station helpers.
//
// Usage:
//
//	dfnutil time normalize 2457754.5
//	dfnutil time round 2017-06-30T16:13:29 --n 30
//	dfnutil files glob --ext NEF --ext CR2 --dir /data/2017-06-30
//	dfnutil files config /data
//	dfnutil files log /data --suffix _log_interval --system 15 --backend find
//	dfnutil log search run.txt --key leostick_version --module interval_control_lin
//	dfnutil tools
//	dfnutil tools --stats
//
// Global Flags:
//
//	-o, --output   text, json or yaml
//	--log-level    debug, info, warn, error (default from LOG_LEVEL)
//	--backend      walk or find (default from DFN_SEARCH_BACKEND)
package main
