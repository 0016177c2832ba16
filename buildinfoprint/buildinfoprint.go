// buildinfoprint is imported for the side effect of printing the buildinfo
// to os.StdErr
package buildinfoprint

import "github.com/liqingbioinfo/qmplot/buildinfo"

func init() {
	buildinfo.PrintToStdErr()
}
