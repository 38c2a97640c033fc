/*
Package validation checks operator supplied values before the service starts.

It covers CORS origins, TCP ports, hostnames and readable files. Every
function returns a descriptive error for invalid input and is safe for
concurrent use.
*/
package validation
