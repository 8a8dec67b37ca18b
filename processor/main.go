package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"wareflow-app/config"
	"wareflow-app/database"
	"wareflow-app/models"
	"wareflow-app/utils"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// Processor sinkronisasi: baca file CSV issue dari sistem estate lama,
// masukkan ke issue_records (source "sync"), lalu pindahkan file ke
// folder processed. Jalankan lewat cron / task scheduler.

func main() {
	config.LoadConfig()

	db, err := database.Connect()
	if err != nil {
		log.Fatal("Gagal konek database:", err)
	}

	summary := processInbox(db)

	if summary.FilesProcessed > 0 && config.ReportMailTo != "" {
		if err := sendSummaryEmail(summary); err != nil {
			log.Println("Gagal mengirim email summary:", err)
		}
	}

	log.Printf("Selesai: %d file, %d baris masuk, %d baris gagal",
		summary.FilesProcessed, summary.RowsImported, summary.RowsFailed)
}

type syncSummary struct {
	FilesProcessed int
	RowsImported   int
	RowsFailed     int
	Details        []string
}

func processInbox(db *gorm.DB) syncSummary {
	var summary syncSummary

	files, err := filepath.Glob(filepath.Join(config.SyncInboxDir, "*.csv"))
	if err != nil {
		log.Println("Gagal membaca folder inbox:", err)
		return summary
	}

	for _, file := range files {
		name := filepath.Base(file)

		// File issue dari sistem lama selalu berawalan ISSUE_.
		if !strings.HasPrefix(name, "ISSUE_") {
			log.Println("File tidak dikenali, skip:", name)
			continue
		}

		if utils.IsFileProcessed(db, name) {
			log.Println("File sudah pernah diproses, skip:", name)
			continue
		}

		imported, failed, err := processIssueCSV(db, file)
		if err != nil {
			log.Println("Gagal memproses file:", name, err)
			summary.Details = append(summary.Details, fmt.Sprintf("%s: ERROR %v", name, err))
			continue
		}

		info, _ := os.Stat(file)
		fileLog := models.FileLog{Filename: name, RowCount: imported}
		if info != nil {
			fileLog.DateModified = info.ModTime()
		}
		utils.InsertFileLog(db, fileLog)

		if err := moveToProcessed(file); err != nil {
			log.Println("Gagal memindahkan file:", name, err)
		}

		summary.FilesProcessed++
		summary.RowsImported += imported
		summary.RowsFailed += failed
		summary.Details = append(summary.Details,
			fmt.Sprintf("%s: %d baris masuk, %d gagal", name, imported, failed))
	}

	return summary
}

// processIssueCSV expects columns:
// issue_no, timestamp, location_code, item_code, quantity, issued_to
func processIssueCSV(db *gorm.DB, filename string) (imported, failed int, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, 0, err
	}

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	file.Close()
	if err != nil {
		return 0, 0, err
	}

	for i, row := range rows {
		if i == 0 {
			continue // skip header
		}
		if len(row) < 6 {
			failed++
			continue
		}

		qty, convErr := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
		if convErr != nil || qty <= 0 {
			failed++
			continue
		}

		ts, tsErr := time.Parse("2006-01-02 15:04:05", strings.TrimSpace(row[1]))
		if tsErr != nil {
			ts, tsErr = time.Parse("2006-01-02", strings.TrimSpace(row[1]))
			if tsErr != nil {
				failed++
				continue
			}
		}

		record := models.IssueRecord{
			IssueNo:      strings.TrimSpace(row[0]),
			Timestamp:    ts,
			LocationCode: strings.TrimSpace(row[2]),
			ItemCode:     strings.TrimSpace(row[3]),
			Quantity:     qty,
			IssuedTo:     strings.TrimSpace(row[5]),
			Source:       "sync",
		}

		if err := db.Create(&record).Error; err != nil {
			failed++
			continue
		}
		imported++
	}

	return imported, failed, nil
}

func moveToProcessed(filename string) error {
	if _, err := os.Stat(config.SyncDoneDir); os.IsNotExist(err) {
		if err := os.MkdirAll(config.SyncDoneDir, os.ModePerm); err != nil {
			return err
		}
	}

	dst := filepath.Join(config.SyncDoneDir, filepath.Base(filename))
	if err := os.Rename(filename, dst); err != nil {
		// Rename lintas partisi bisa gagal, fallback copy & delete.
		return copyAndDeleteFile(filename, dst)
	}
	return nil
}

func copyAndDeleteFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Remove(src)
}

func sendSummaryEmail(summary syncSummary) error {
	var body strings.Builder
	body.WriteString("<h3>WareFlow Sync Report</h3>")
	body.WriteString(fmt.Sprintf("<p>Files: %d, Rows imported: %d, Rows failed: %d</p>",
		summary.FilesProcessed, summary.RowsImported, summary.RowsFailed))
	body.WriteString("<ul>")
	for _, d := range summary.Details {
		body.WriteString("<li>" + d + "</li>")
	}
	body.WriteString("</ul>")

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", strings.Split(config.ReportMailTo, ",")...)
	msg.SetHeader("Subject", "WareFlow Sync Report "+time.Now().Format("2006-01-02 15:04"))
	msg.SetBody("text/html", body.String())

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}
