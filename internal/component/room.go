package component

// Room — ограниченная игровая зона. Маркеры входа и выхода задаются
// при загрузке и дальше только читаются.
type Room struct {
	Name     string
	Bounds   Rect
	Entrance Position
	Exit     Position
}
