// Where: internal/app/usage.go
// What: Usage text.
// Why: Single source for the help output shared by -h and usage errors.
package app

const usageText = `colbuild - colcon workspace build helper

Usage: colbuild <action> [package] [modifiers]

Actions (exactly one required):
  -b,   --build [package]              build (release mode)
  -bd,  --build-debug [package]        build (debug mode)
  -cb,  --clean-build [package]        clean, then build (release mode)
  -cbd, --clean-build-debug [package]  clean, then build (debug mode)
  -c,   --clean                        remove build/, install/, log/

Modifiers:
  -s,  --symlink              use --symlink-install
  -v,  --verbose              stream build output (console_direct+)
  -nw, --no-warning           suppress compiler warnings
  -o,  --opt "K1=V1 K2=V2"    extra CMake definitions (-DK1=V1 -DK2=V2)
  -n,  --dry-run              print the colcon invocation without running it
  -h,  --help                 show this help
       --version              show version

With no package, the whole workspace is built. A named package must exist in
the workspace as a directory containing package.xml and CMakeLists.txt.
Defaults can be set per workspace in colbuild.yaml.
`
