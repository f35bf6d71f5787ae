package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/annel0/mmo-mapgen/internal/config"
	"github.com/annel0/mmo-mapgen/internal/logging"
	"github.com/annel0/mmo-mapgen/internal/mapgen"
	"github.com/annel0/mmo-mapgen/internal/nodedef"
	"github.com/annel0/mmo-mapgen/internal/observability"
	"github.com/annel0/mmo-mapgen/internal/util"
	"github.com/annel0/mmo-mapgen/internal/vec"
	"github.com/annel0/mmo-mapgen/internal/voxel"
	"github.com/annel0/mmo-mapgen/internal/worldgen"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML-конфигурации")
	regionSize := flag.Int("size", 80, "размер стороны области генерации")
	serve := flag.Bool("serve", false, "держать процесс живым ради эндпоинта метрик")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("mapgen"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🗺️  Запуск генератора производных атрибутов области...")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("❌ Ошибка загрузки конфигурации: %v", err)
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	// Телеметрия опциональна: без коллектора работаем дальше
	ctx := context.Background()
	if os.Getenv("MAPGEN_OTLP") != "" {
		shutdown, err := observability.InitTelemetry(ctx, "mmo-mapgen")
		if err != nil {
			logging.Warn("Телеметрия недоступна: %v", err)
		} else {
			defer shutdown(ctx)
		}
	}

	// Справочник материалов: встроенный набор плюс YAML-каталог, если задан
	registry := nodedef.NewRegistry()
	registry.RegisterDefaults()
	if cfg.Mapgen.NodesPath != "" {
		if err := registry.LoadYAML(cfg.Mapgen.NodesPath); err != nil {
			logging.Error("❌ Ошибка загрузки каталога нодов: %v", err)
			log.Fatalf("❌ Ошибка загрузки каталога нодов: %v", err)
		}
		logging.Info("📦 Каталог материалов загружен: %d записей", registry.Len())
	}

	flags, err := mapgen.ParseFlags(cfg.Mapgen.Flags)
	if err != nil {
		logging.Error("❌ %v", err)
		log.Fatalf("❌ %v", err)
	}

	seed := cfg.Mapgen.GetSeed()
	waterLevel := cfg.Mapgen.WaterLevel
	engine := mapgen.EngineKind(cfg.Mapgen.GetLightingEngine())

	logging.Info("📡 Параметры: seed=%d, water_level=%d, engine=%s, flags=%s",
		seed, waterLevel, engine, flags)

	// Буфер держит область плюс кайму в один нод: ряд над верхней границей
	// нужен солнечному освещению, остальная кайма остаётся несгенерированной.
	size := *regionSize
	nmin := vec.Vec3{X: 0, Y: -size / 2, Z: 0}
	nmax := vec.Vec3{X: size - 1, Y: size/2 - 1, Z: size - 1}
	bmin := vec.Vec3{X: nmin.X - 1, Y: nmin.Y - 1, Z: nmin.Z - 1}
	bmax := vec.Vec3{X: nmax.X + 1, Y: nmax.Y + 1, Z: nmax.Z + 1}

	vm := voxel.NewManip(bmin, bmax)

	gen := worldgen.NewGenerator(seed, waterLevel)
	mg, err := mapgen.New(vm, registry, mapgen.Params{
		Seed:       seed,
		WaterLevel: waterLevel,
		Flags:      flags,
		Engine:     engine,
	})
	if err != nil {
		logging.Error("❌ Ошибка создания mapgen: %v", err)
		log.Fatalf("❌ Ошибка создания mapgen: %v", err)
	}

	columns := (nmax.X - nmin.X + 1) * (nmax.Z - nmin.Z + 1)
	mg.Heightmap = make([]int, columns)
	liquids := util.NewUniqueQueue()

	// Метрики генерации
	exporter := mapgen.NewMetricsExporter(fmt.Sprintf(":%d", cfg.Metrics.GetMetricsPort()))
	exporter.Start()

	jobID := uuid.New()
	logging.Info("⚙️  Проход генерации %s: область [%v .. %v] (%d вокселей)",
		jobID, nmin, nmax, vm.Area.Volume())

	_, span := observability.StartRegionSpan(ctx, "mapgen.generate")

	start := time.Now()
	gen.Fill(vm, nmin, nmax)
	fillDur := time.Since(start)

	start = time.Now()
	mg.UpdateHeightmap(nmin, nmax)
	heightDur := time.Since(start)

	start = time.Now()
	mg.UpdateLiquid(liquids, nmin, nmax)
	liquidDur := time.Since(start)

	var lightDur time.Duration
	if flags.Has(mapgen.FlagLight) {
		start = time.Now()
		mg.CalcLighting(nmin, nmax)
		lightDur = time.Since(start)
	} else {
		mg.SetLighting(nmin, nmax, voxel.LightPair{Day: voxel.LightSun, Night: 0})
	}

	span.End()
	mapgen.RegionDone()

	logging.Info("✅ Проход %s завершён", jobID)
	logging.Info("   🏔  Ландшафт: %v, карта высот: %v", fillDur, heightDur)
	logging.Info("   💧 Границы жидкостей: %d шт за %v", liquids.Len(), liquidDur)
	if flags.Has(mapgen.FlagLight) {
		logging.Info("   💡 Освещение (%s): %v", mg.EngineName(), lightDur)
	}

	reportProcessStats()

	if *serve {
		logging.Info("📊 Процесс остаётся жить ради метрик, Ctrl+C для выхода")
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
	}

	if err := exporter.Stop(); err != nil {
		logging.Warn("Ошибка остановки экспортёра метрик: %v", err)
	}
}

// reportProcessStats пишет в лог потребление CPU и памяти процессом
func reportProcessStats() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	logging.Info("   📈 Память: %.1f MB", float64(m.Alloc)/1024/1024)

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}
	if cpuPercent, err := proc.CPUPercent(); err == nil {
		logging.Info("   📈 CPU процесса: %.1f%%", cpuPercent)
	}
}
