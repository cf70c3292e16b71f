// Package model holds the value types shared by lessons, services and
// repositories, plus the small scalar types that teach echo's binder and
// encoding/json new tricks (lenient booleans, sets, durations).
package model
