// compileinfoprint is imported for the side effect of printing build
// information to os.Stderr at startup.
package compileinfoprint

import "github.com/bge-barcoding/boldtools/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
