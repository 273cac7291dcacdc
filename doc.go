/*

Command hexb64 converts between hexadecimal and Base64 text encodings.

The same binary serves both directions and picks one by the name it is
invoked under, so install it twice (hard link, symlink, or copy):

	hexb64 [-url] [-v] [data]
	b64hex [-low|-up] [-v] [data]

hexb64 decodes hex input (whitespace anywhere, optional 0x/0X prefix,
either digit case) and prints Base64, classic alphabet by default or
URL-safe under -url.

b64hex decodes Base64 input (classic alphabet first, then URL-safe with
optional padding) and prints hex, lowercase by default or uppercase
under -up.

data is a single optional argument; stdin is read to end-of-stream when
it is absent. The converted token is printed to stdout; errors and -v
diagnostics go to stderr. Exit status is 0 on success, 1 on any failure.

*/
package main
