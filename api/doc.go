// Package api
// Author: momentics <momentics@gmail.com>
//
// Contract surface for hioload-mem: heap-free layout planning and
// fixed-capacity slot allocation. The package is dependency-free by design;
// implementations live in sibling packages (layout, pool, arena) and assert
// conformance with compile-time interface checks.
package api
