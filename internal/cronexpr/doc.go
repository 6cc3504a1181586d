// Package cronexpr converts between five-field cron expressions and
// validated structured recurrences.
//
//	┌───────────── minute (0-59)
//	│ ┌───────────── hour (0-23)
//	│ │ ┌───────────── day of month (1-31)
//	│ │ │ ┌───────────── month (1-12 or JAN-DEC)
//	│ │ │ │ ┌───────────── day of week (0-7 or SUN-SAT, 0 and 7 are Sunday)
//	│ │ │ │ │
//	* * * * *
//
// Parsing classifies the wildcard shape of the five fields into a Period
// (minute, hour, day, week, month, year) and then parses only the fields
// that period uses. Aliases such as @daily expand before classification;
// @reboot maps directly to PeriodReboot.
//
// Rendering emits the most compact form: consecutive runs become ranges and
// complete progressions become */n.
//
// Everything in this package is pure. Converters are safe for concurrent use.
package cronexpr
