package matrix

// Stamper is the narrow interface the network package stamps its entities
// against, mirroring the device/matrix split in the teacher repository
// (pkg/matrix.DeviceMatrix there stamped real-valued SPICE elements; here
// every quantity is complex, 1-based row/column indexing carried forward).
type Stamper interface {
	AddElement(i, j int, value complex128)
	AddRHS(i int, value complex128)
}
