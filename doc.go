/*
Package launcher implements the bootstrap flow of the Gemini image generation application.

The launcher verifies a Python interpreter is reachable, provisions the
application packages best-effort, starts the target script as a child process
inheriting the console and reports failures to the operator before the console
window closes.

The project has two main source packages:
`cmd`: Main applications.
`internal`: Private application and library code.
*/
package launcher
