package sensor

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/d2r2/go-bsbmp"
	d2ri2c "github.com/d2r2/go-i2c"
	t67xx "github.com/wjessop/T67XX"
	"github.com/yryz/ds18b20"
	expi2c "golang.org/x/exp/io/i2c"
)

func parseI2CAddress(device *DeviceConfig) (uint8, error) {
	addr, err := strconv.ParseUint(device.Address, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("bad i2c address %q for %s: %w", device.Address, device.Name, err)
	}

	return uint8(addr), nil
}

// readBME280 samples a BME280 breakout. withPressure controls whether the
// pressure register is read as well (the air-quality node sits indoors next
// to the CO2 sensor and only contributes temperature and humidity).
func (s *HardwareSources) readBME280(device *DeviceConfig, withPressure bool) (*Reading, error) {
	addr, err := parseI2CAddress(device)
	if err != nil {
		return nil, err
	}

	conn, err := d2ri2c.NewI2C(addr, device.Bus)
	if err != nil {
		return nil, Transient(device.Name, err)
	}

	defer conn.Close()

	bme, err := bsbmp.NewBMP(bsbmp.BME280, conn)
	if err != nil {
		return nil, Transient(device.Name, err)
	}

	t, err := bme.ReadTemperatureC(bsbmp.ACCURACY_STANDARD)
	if err != nil {
		return nil, Transient(device.Name, err)
	}

	_, h, err := bme.ReadHumidityRH(bsbmp.ACCURACY_STANDARD)
	if err != nil {
		return nil, Transient(device.Name, err)
	}

	reading := Reading{
		TemperatureC: float64(t) + device.CalibrationOffsetCelsius,
		Humidity:     float64(h),
	}

	if withPressure {
		pa, err := bme.ReadPressurePa(bsbmp.ACCURACY_STANDARD)
		if err != nil {
			return nil, Transient(device.Name, err)
		}

		hpa := float64(pa) / 100
		reading.PressureHPa = &hpa
	}

	slog.Debug("read BME280", "device", device.Name, "temp_c", reading.TemperatureC, "humidity", reading.Humidity)

	return &reading, nil
}

func (s *HardwareSources) readCO2(device *DeviceConfig) (int, error) {
	addr, err := parseI2CAddress(device)
	if err != nil {
		return 0, err
	}

	dev, err := expi2c.Open(&expi2c.Devfs{Dev: fmt.Sprintf("/dev/i2c-%d", device.Bus)}, int(addr))
	if err != nil {
		return 0, Transient(device.Name, err)
	}

	defer dev.Close()

	driver := &t67xx.T67XX{}
	driver.Device = dev
	driver.SetLogger(t67Logger{})

	ppm, err := driver.GasPPM()
	if err != nil {
		return 0, Transient(device.Name, err)
	}

	slog.Debug("read CO2", "device", device.Name, "co2_ppm", ppm)

	return int(ppm), nil
}

func (s *HardwareSources) ReadQuality() (*Reading, error) {
	slog.Debug(">>ReadQuality")
	defer slog.Debug("<<ReadQuality")

	reading, err := s.readBME280(&s.config.QualityThermometer, false)
	if err != nil {
		return nil, err
	}

	ppm, err := s.readCO2(&s.config.QualityCO2)
	if err != nil {
		return nil, err
	}

	reading.CO2 = &ppm

	return reading, nil
}

func (s *HardwareSources) ReadBarometer() (*Reading, error) {
	slog.Debug(">>ReadBarometer")
	defer slog.Debug("<<ReadBarometer")

	return s.readBME280(&s.config.Barometer, true)
}

func (s *HardwareSources) ReadFridge() (*Reading, error) {
	slog.Debug(">>ReadFridge")
	defer slog.Debug("<<ReadFridge")

	device := s.config.FridgeProbe

	t, err := ds18b20.Temperature(device.Address)
	if err != nil {
		return nil, Transient(device.Name, err)
	}

	t += device.CalibrationOffsetCelsius
	slog.Debug("read fridge probe", "device", device.Name, "temp_c", t)

	// DS18B20 measures temperature only; humidity stays at zero.
	return &Reading{TemperatureC: t}, nil
}

func (s *HardwareSources) HasFridge() bool {
	return s.config.HaveFridgeProbe
}

// t67Logger satisfies the t67xx driver's logger with slog.
type t67Logger struct{}

func (t67Logger) Debug(args ...interface{}) {
	slog.Debug(fmt.Sprint(args...))
}

func (t67Logger) Debugf(format string, args ...interface{}) {
	slog.Debug(fmt.Sprintf(format, args...))
}

func (t67Logger) Fatalf(format string, args ...interface{}) {
	slog.Error(fmt.Sprintf(format, args...))
}
