package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/table"
	"github.com/orbisfs/pkg-extractor/db"
	"github.com/orbisfs/pkg-extractor/pkgfs"
	"github.com/orbisfs/pkg-extractor/settings"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

var (
	asUpdate    = flag.Bool("as-update", false, "extract an update package in place (skip the titleID folder)")
	asDlc       = flag.Bool("as-dlc", false, "extract a DLC package in place")
	listEntries = flag.Bool("list", false, "print the PFS entry table after extraction")
	workers     = flag.Int("workers", 0, "number of extraction workers (0 = min(8, cpu count))")
	progressBar *progressbar.ProgressBar
)

type Console struct {
	baseFolder  string
	sugarLogger *zap.SugaredLogger
}

func CreateConsole(baseFolder string, sugarLogger *zap.SugaredLogger) *Console {
	return &Console{baseFolder: baseFolder, sugarLogger: sugarLogger}
}

func (c *Console) Start(pkgPath string, outDir string) bool {
	settingsObj := settings.ReadSettings(c.baseFolder)

	p := pkgfs.NewPKG()
	defer p.Close()

	if err := p.Open(pkgPath); err != nil {
		fmt.Printf("Failed to open PKG: %v\n", err)
		c.sugarLogger.Errorf("failed to open %v - %v", pkgPath, err)
		return false
	}

	if keys, err := settings.InitOverrideKeys(c.baseFolder); err == nil && keys != nil {
		if raw := keys.GetEkpfs(p.GetContentID()); raw != nil {
			c.sugarLogger.Infof("using override ekpfs for %v", p.GetContentID())
			p.SetEkpfsOverride(raw)
		}
	}

	if *asUpdate || *asDlc || settingsObj.AsUpdate || settingsObj.AsDlc {
		p.Layout = pkgfs.LayoutInPlace
	}
	p.Workers = settingsObj.Workers
	if *workers != 0 {
		p.Workers = *workers
	}

	c.printPkgInfo(p)

	var historyDB *db.ExtractionsDB
	if settingsObj.KeepHistory {
		var err error
		historyDB, err = db.NewExtractionsDB(c.baseFolder)
		if err != nil {
			c.sugarLogger.Warnf("failed to open extractions db - %v", err)
		} else {
			defer historyDB.Close()
			if prior, err := historyDB.Lookup(p.GetContentID()); err == nil && prior != nil {
				fmt.Printf("Note: this package was already extracted to [%v]\n", prior.OutputPath)
			}
		}
	}

	if err := p.Extract(outDir); err != nil {
		fmt.Printf("Extraction failed: %v\n", err)
		c.sugarLogger.Errorf("extraction of %v failed - %v", pkgPath, err)
		return false
	}

	keys := p.GetDerivedKeys()
	c.sugarLogger.Debugf("dk3=%v ivKey=%v ekpfs=%v dataKey=%v tweakKey=%v",
		keys.DK3, keys.IvKey, keys.EkpfsKey, keys.DataKey, keys.TweakKey)

	numFiles := p.GetNumberOfFiles()
	fmt.Printf("\nExtracting %d entries\n", numFiles)
	progressBar = progressbar.New(numFiles)
	err := p.ExtractAllFilesWithProgress(c.UpdateProgress)
	progressBar.Finish()
	fmt.Println()
	if err != nil {
		fmt.Printf("Extraction failed: %v\n", err)
		c.sugarLogger.Errorf("extraction of %v failed - %v", pkgPath, err)
		return false
	}

	if *listEntries {
		c.printEntries(p)
	}

	if historyDB != nil {
		err := historyDB.Record(db.ExtractionRecord{
			ContentID:  p.GetContentID(),
			TitleID:    p.GetTitleID(),
			PkgSize:    p.GetPkgSize(),
			FileCount:  numFiles,
			OutputPath: outDir,
			When:       time.Now(),
		})
		if err != nil {
			c.sugarLogger.Warnf("failed to record extraction - %v", err)
		}
	}

	fmt.Printf("Extraction completed\n")
	return true
}

func (c *Console) printPkgInfo(p *pkgfs.PKG) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleColoredBright)
	t.AppendHeader(table.Row{"Title ID", "Content ID", "Flags", "Size"})
	t.AppendRow([]interface{}{p.GetTitleID(), p.GetContentID(), p.GetPkgFlags(), p.GetPkgSize()})
	t.Render()
}

func (c *Console) printEntries(p *pkgfs.PKG) {
	typeNames := map[int32]string{
		pkgfs.PFSCurrentDir: "CURDIR",
		pkgfs.PFSParentDir:  "PARENTDIR",
		pkgfs.PFSFile:       "FILE",
		pkgfs.PFSDir:        "DIR",
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleColoredBright)
	t.AppendHeader(table.Row{"#", "Name", "Type", "Inode"})
	for i, entry := range p.GetAllEntries() {
		name := typeNames[entry.Type]
		if name == "" {
			name = fmt.Sprintf("%d", entry.Type)
		}
		t.AppendRow([]interface{}{i, entry.Name, name, entry.Ino})
	}
	t.AppendFooter(table.Row{"", "", "Total", len(p.GetAllEntries())})
	t.Render()
}

func (c *Console) UpdateProgress(curr int, total int) {
	progressBar.ChangeMax(total)
	progressBar.Set(curr)
}
