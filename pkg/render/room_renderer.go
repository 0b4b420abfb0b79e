package render

import (
	"image/color"
	"sort"

	"go-drosera/internal/component"
	"go-drosera/internal/entity"
	"go-drosera/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// RoomRenderer рисует статичную раскладку комнат в предрендеренный задник.
type RoomRenderer struct {
	ecs          *entity.ECS
	colors       RoomColors
	screenWidth  int
	screenHeight int
	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	fontFace     font.Face
	mapImage     *ebiten.Image // Поле для предрендеренной карты
}

func NewRoomRenderer(ecs *entity.ECS, colors RoomColors, screenWidth, screenHeight int) (*RoomRenderer, error) {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	face, err := LoadFace(12)
	if err != nil {
		return nil, err
	}

	renderer := &RoomRenderer{
		ecs:          ecs,
		colors:       colors,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 8),
		fillIs:       make([]uint16, 0, 8),
		strokeVs:     make([]ebiten.Vertex, 0, 32),
		strokeIs:     make([]uint16, 0, 32),
		fontFace:     face,
		mapImage:     ebiten.NewImage(screenWidth, screenHeight), // Создаём изображение размером с экран
	}

	// Отрисовываем карту один раз при инициализации
	renderer.RenderMapImage()

	return renderer, nil
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *RoomRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)

	ids := make([]types.EntityID, 0, len(r.ecs.Rooms))
	for id := range r.ecs.Rooms {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		r.drawRoom(r.mapImage, r.ecs.Rooms[id])
	}
}

// Draw рисует задник, подсвечивая комнату, в которой находится игрок.
func (r *RoomRenderer) Draw(screen *ebiten.Image) {
	// Рисуем предрендеренную карту одним вызовом
	screen.DrawImage(r.mapImage, nil)

	if r.ecs.Player == nil {
		return
	}
	if room, ok := r.ecs.Rooms[r.ecs.Player.CurrentRoom]; ok {
		r.strokeRect(screen, room.Bounds, LightenColor(r.colors.StrokeColor, 60))
	}
}

func (r *RoomRenderer) drawRoom(target *ebiten.Image, room *component.Room) {
	path := rectPath(room.Bounds)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paintVertices(r.fillVs, r.colors.FloorColor)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
	r.strokeRect(target, room.Bounds, r.colors.StrokeColor)

	vector.DrawFilledCircle(target, float32(room.Entrance.X), float32(room.Entrance.Y), 5, r.colors.EntryColor, true)
	vector.DrawFilledCircle(target, float32(room.Exit.X), float32(room.Exit.Y), 5, r.colors.ExitColor, true)

	label := room.Name
	bounds := text.BoundString(r.fontFace, label)
	textColor := LabelColor(r.colors.FloorColor, r.colors)
	x := int(room.Bounds.X+room.Bounds.Width/2) - bounds.Dx()/2
	y := int(room.Bounds.Y) + bounds.Dy() + 6
	text.Draw(target, label, r.fontFace, x, y, textColor)
}

func (r *RoomRenderer) strokeRect(target *ebiten.Image, rect component.Rect, c color.RGBA) {
	path := rectPath(rect)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.colors.StrokeWidth,
	})
	paintVertices(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func rectPath(rect component.Rect) *vector.Path {
	path := &vector.Path{}
	path.MoveTo(float32(rect.X), float32(rect.Y))
	path.LineTo(float32(rect.X+rect.Width), float32(rect.Y))
	path.LineTo(float32(rect.X+rect.Width), float32(rect.Y+rect.Height))
	path.LineTo(float32(rect.X), float32(rect.Y+rect.Height))
	path.Close()
	return path
}

func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
